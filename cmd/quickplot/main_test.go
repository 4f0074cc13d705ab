package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickplot/internal/config"
	"quickplot/internal/telemetry"
)

// execute runs the CLI with the file backend writing into a temp dir and
// returns the lines printed to stdout.
func execute(t *testing.T, args ...string) ([]string, string, error) {
	t.Helper()
	t.Setenv(telemetry.EndpointEnv, "")
	t.Chdir(t.TempDir())
	dir := t.TempDir()

	var out bytes.Buffer
	cmd, a := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--backend", "file", "--out-dir", dir, "--width", "2", "--height", "2"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	require.NoError(t, a.close(context.Background()))

	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines, dir, err
}

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func assertFiles(t *testing.T, paths []string) {
	t.Helper()
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestSync_WritesOneFigurePerImage(t *testing.T) {
	in := writeJSON(t, `[[[0,10]], [[-5,8]], [[2,3]]]`)
	lines, dir, err := execute(t, "sync", in, "--titles", "a,b,c")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "sync-0.png"),
		filepath.Join(dir, "sync-1.png"),
		filepath.Join(dir, "sync-2.png"),
	}, lines)
	assertFiles(t, lines)
}

func TestSync_TooManyTitles(t *testing.T) {
	in := writeJSON(t, `[[[0,1]]]`)
	_, _, err := execute(t, "sync", in, "--titles", "a,b")
	assert.Error(t, err)
}

func TestGrid_DemoData(t *testing.T) {
	for _, mode := range []string{"plot", "imshow"} {
		t.Run(mode, func(t *testing.T) {
			lines, _, err := execute(t, "grid", "--mode", mode, "--title", "demo")
			require.NoError(t, err)
			require.Len(t, lines, 1)
			assertFiles(t, lines)
		})
	}

	_, _, err := execute(t, "grid", "--mode", "scatter")
	assert.Error(t, err)
}

func TestStackAndPlots(t *testing.T) {
	lines, _, err := execute(t, "stack", "--names", "a,b,c,d,e,f,g,h")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assertFiles(t, lines)

	_, _, err = execute(t, "stack", "--names", "only-one")
	assert.Error(t, err, "names must match the stack length")

	in := writeJSON(t, `[[1,2,3],[3,2,1]]`)
	lines, _, err = execute(t, "plots", in, "--ylim", "0,4")
	require.NoError(t, err)
	assertFiles(t, lines)

	_, _, err = execute(t, "plots", in, "--ylim", "1")
	assert.Error(t, err)
}

func TestPhase(t *testing.T) {
	lines, _, err := execute(t, "phase", "--theme", "light", "--format", "svg")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], ".svg"))

	_, _, err = execute(t, "phase", "--theme", "sepia")
	assert.Error(t, err)
}

func TestColormapHex(t *testing.T) {
	lines, _, err := execute(t, "colormap", "--hex", "-n", "16", "--space", "hpluv")
	require.NoError(t, err)
	require.Len(t, lines, 16)
	assert.Equal(t, lines[0], lines[15], "cyclic maps close on themselves")
	assert.Equal(t, "#000000", lines[0])

	lines, _, err = execute(t, "colormap", "-n", "32")
	require.NoError(t, err)
	assertFiles(t, lines)
}

func TestConfigFileAndOverrides(t *testing.T) {
	t.Setenv(telemetry.EndpointEnv, "")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend = \"file\"\nformat = \"svg\"\n"), 0o644))

	var out bytes.Buffer
	cmd, a := newRootCmd(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--out-dir", dir, "--cmap", "gray", "grid", "--width", "2", "--height", "2"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.NoError(t, a.close(context.Background()))

	assert.Equal(t, "gray", a.cfg.Colormap)
	assert.Equal(t, "svg", a.cfg.Format)
	assert.Equal(t, filepath.Join(dir, "grid-0.svg"), strings.TrimSpace(out.String()))
}

func TestBadBackend(t *testing.T) {
	_, _, err := execute(t, "sync", "--backend", "qt")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
