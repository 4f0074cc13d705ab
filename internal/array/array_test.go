package array

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_Widen(t *testing.T) {
	l := Limits{Min: 0, Max: 10}

	out, widened := l.Widen(Limits{Min: 2, Max: 3})
	assert.False(t, widened)
	assert.Equal(t, l, out)

	out, widened = l.Widen(Limits{Min: -5, Max: 8})
	assert.True(t, widened)
	assert.Equal(t, Limits{Min: -5, Max: 10}, out)

	out, widened = l.Widen(Limits{Min: 1, Max: 12})
	assert.True(t, widened)
	assert.Equal(t, Limits{Min: 0, Max: 12}, out)
}

func TestLimits_Normalize(t *testing.T) {
	l := Limits{Min: -1, Max: 1}
	assert.InDelta(t, 0.5, l.Normalize(0), 1e-12)
	assert.Equal(t, 0.0, l.Normalize(-3))
	assert.Equal(t, 1.0, l.Normalize(3))
	assert.Equal(t, 0.0, Limits{Min: 2, Max: 2}.Normalize(2), "zero-width range")
}

func TestLimits_Valid(t *testing.T) {
	assert.True(t, Limits{Min: 1, Max: 1}.Valid())
	assert.False(t, Limits{Min: 2, Max: 1}.Valid())
	assert.False(t, Limits{Min: math.NaN(), Max: 1}.Valid())
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	rows, cols := m.Size()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6.0, m.At(1, 2))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMatrix_Extent(t *testing.T) {
	m, err := FromRows([][]float64{{3, -2}, {7, 0}})
	require.NoError(t, err)
	l, err := m.Extent()
	require.NoError(t, err)
	assert.Equal(t, Limits{Min: -2, Max: 7}, l)

	_, err = Matrix{}.Extent()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSeries_Extent(t *testing.T) {
	l, err := Series{4, -1, 9}.Extent()
	require.NoError(t, err)
	assert.Equal(t, Limits{Min: -1, Max: 9}, l)

	_, err = Series{}.Extent()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestExtent_Union(t *testing.T) {
	l, err := Extent([]Series{{0, 10}, {-5, 8}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, Limits{Min: -5, Max: 10}, l)

	_, err = Extent([]Series{{1}, {}})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Extent[Series](nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, Index(4))
	assert.Equal(t, []float64{0}, Index(1))
	assert.Empty(t, Index(0))
}

func TestComplex_MaxAbs(t *testing.T) {
	z := Complex{{3 + 4i, 1}, {0, -2i}}
	assert.InDelta(t, 5, z.MaxAbs(), 1e-12)
	assert.Equal(t, 0.0, Complex{}.MaxAbs())
}

func TestComplex_Validate(t *testing.T) {
	assert.NoError(t, Complex{{1, 2}, {3, 4}}.Validate())
	assert.ErrorIs(t, Complex{}.Validate(), ErrEmpty)
	assert.ErrorIs(t, Complex{{}}.Validate(), ErrEmpty)
	assert.ErrorIs(t, Complex{{1, 2}, {3}}.Validate(), ErrRagged)
}

func TestRGB_Image(t *testing.T) {
	f := NewRGB(2, 3)
	f.Set(1, 2, colorful.Color{R: 1, G: 0, B: 0})

	assert.Equal(t, 3, f.Bounds().Dx())
	assert.Equal(t, 2, f.Bounds().Dy())

	r, g, b, a := f.At(2, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
	assert.Equal(t, [3]float64{1, 0, 0}, f.Channels(1, 2))
}
