package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_UsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(OutputDirEnv, dir)

	store, err := NewStore("")
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())
}

func TestNewStore_ExplicitDirWins(t *testing.T) {
	t.Setenv(OutputDirEnv, t.TempDir())
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.BaseDir())
}

func TestStore_Path_NormalizesAndCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	store, err := NewStore(dir)
	require.NoError(t, err)

	got, err := store.Path("My Figure", ".png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my-figure.png"), got)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a-b", Normalize(" A B "))
	assert.Equal(t, "ab", Normalize("a/b"))
	assert.Equal(t, "figure", Normalize("  "))
}
