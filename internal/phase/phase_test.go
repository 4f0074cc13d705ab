package phase

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickplot/internal/array"
)

func TestHue_Wraps(t *testing.T) {
	assert.Equal(t, 0.0, Hue(1))
	assert.InDelta(t, 0.25, Hue(1i), 1e-12)
	assert.InDelta(t, 0.5, Hue(-1), 1e-12)
	assert.InDelta(t, 0.75, Hue(-1i), 1e-12)
	for _, a := range []float64{-math.Pi + 1e-9, -1, 0.3, math.Pi} {
		h := Hue(cmplx.Rect(1, a))
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 1.0)
	}
}

func TestEncode_DarkTheme(t *testing.T) {
	z := array.Complex{{2, 1, 0}}
	rgb, err := Encode(z, Dark, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, rgb.Rows)
	require.Equal(t, 3, rgb.Cols)

	// Full magnitude, phase 0: pure red.
	assert.InDelta(t, 1, rgb.Get(0, 0).R, 1e-9)
	assert.InDelta(t, 0, rgb.Get(0, 0).G, 1e-9)
	// Half magnitude: value 0.5.
	assert.InDelta(t, 0.5, rgb.Get(0, 1).R, 1e-9)
	// Zero magnitude: black.
	assert.Equal(t, [3]float64{0, 0, 0}, rgb.Channels(0, 2))
}

func TestEncode_LightTheme(t *testing.T) {
	z := array.Complex{{2, 0}}
	rgb, err := Encode(z, Light, Options{})
	require.NoError(t, err)

	assert.InDelta(t, 1, rgb.Get(0, 0).R, 1e-9)
	assert.InDelta(t, 0, rgb.Get(0, 0).B, 1e-9)
	// Zero magnitude: white.
	assert.Equal(t, [3]float64{1, 1, 1}, rgb.Channels(0, 1))
}

func TestEncode_ExplicitNormClamps(t *testing.T) {
	z := array.Complex{{4, 1}}
	rgb, err := Encode(z, Dark, Options{Norm: 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, rgb.Get(0, 0).R, 1e-9, "magnitude above the cap clamps to 1")
	assert.InDelta(t, 0.5, rgb.Get(0, 1).R, 1e-9)
}

func TestEncode_AllZero(t *testing.T) {
	rgb, err := Encode(array.Complex{{0, 0}}, Dark, Options{})
	require.NoError(t, err)
	for _, c := range rgb.Pix {
		assert.False(t, math.IsNaN(c.R))
		assert.Equal(t, 0.0, c.R)
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(array.Complex{{1}}, Theme("sepia"), Options{})
	assert.ErrorIs(t, err, ErrUnknownTheme)

	_, err = Encode(array.Complex{{1}}, Dark, Options{Norm: -1})
	assert.ErrorIs(t, err, ErrNorm)

	_, err = Encode(nil, Dark, Options{})
	assert.ErrorIs(t, err, array.ErrEmpty)
}

func TestEncode_RaggedRows(t *testing.T) {
	_, err := Encode(array.Complex{{1}, {1, 1i}}, Dark, Options{})
	assert.ErrorIs(t, err, array.ErrRagged, "longer later row")

	_, err = Encode(array.Complex{{1, 1i}, {2}}, Dark, Options{})
	assert.ErrorIs(t, err, array.ErrRagged, "shorter later row")
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(" Light ")
	require.NoError(t, err)
	assert.Equal(t, Light, th)

	_, err = ParseTheme("")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}
