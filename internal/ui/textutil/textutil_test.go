package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "index 12", Truncate("index 12", 8))
	assert.Equal(t, "index…", Truncate("index 123", 6))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "位相…", Truncate("位相位相位相", 5), "wide runes are never split")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "  -5", PadLeft("-5", 4))
	assert.Equal(t, "-5  ", PadRight("-5", 4))
	assert.Equal(t, "123…", PadLeft("123456", 4))
	assert.Equal(t, 6, Width(PadRight("位相", 6)))
}
