package colormap

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclic_FirstEqualsLast(t *testing.T) {
	for _, space := range []Space{HSLuv, HPLuv} {
		for _, n := range []int{2, 3, 16, 255, 256} {
			m, err := Cyclic(n, space)
			require.NoError(t, err, "Cyclic(%d, %s)", n, space)
			require.Equal(t, n, m.Len())
			assert.Equal(t, m.Entry(0), m.Entry(n-1), "Cyclic(%d, %s): first and last differ", n, space)
		}
	}
}

func TestCyclic_SweepClosesOnItself(t *testing.T) {
	for _, conv := range []func(h, s, l float64) colorful.Color{colorful.HSLuv, colorful.HPLuv} {
		for _, n := range []int{2, 3, 16, 255, 256} {
			colors := sweep(n, conv, DefaultCyclicOptions)
			first, last := colors[0], colors[n-1]
			assert.InDelta(t, first.R, last.R, 1e-9, "sweep(%d): R", n)
			assert.InDelta(t, first.G, last.G, 1e-9, "sweep(%d): G", n)
			assert.InDelta(t, first.B, last.B, 1e-9, "sweep(%d): B", n)
		}
	}
}

func TestCyclic_ComponentsInUnitRange(t *testing.T) {
	for _, space := range []Space{HSLuv, HPLuv} {
		m, err := Cyclic(512, space)
		require.NoError(t, err)
		for i, c := range m.Table() {
			for _, v := range []float64{c.R, c.G, c.B} {
				if v < 0 || v > 1 {
					t.Fatalf("Cyclic(512, %s): entry %d out of range: %+v", space, i, c)
				}
			}
		}
	}
}

func TestCyclic_MidpointIsBrightest(t *testing.T) {
	m, err := Cyclic(257, HSLuv)
	require.NoError(t, err)
	mid := m.Entry(128)
	_, _, lMid := mid.Hsl()
	_, _, lEnd := m.Entry(0).Hsl()
	assert.Greater(t, lMid, lEnd)
}

func TestCyclic_Errors(t *testing.T) {
	_, err := Cyclic(1, HSLuv)
	assert.ErrorIs(t, err, ErrResolution)

	_, err = Cyclic(16, Space(7))
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestParseSpace(t *testing.T) {
	s, err := ParseSpace("HPLuv")
	require.NoError(t, err)
	assert.Equal(t, HPLuv, s)

	_, err = ParseSpace("lab")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"hot", "gray", "cyclic", "cyclic-hpluv"} {
		m, err := Named(name)
		require.NoError(t, err, name)
		assert.Equal(t, DefaultSize, m.Len(), name)
	}
	_, err := Named("jet")
	assert.ErrorIs(t, err, ErrUnknownColormap)
}

func TestHot_Endpoints(t *testing.T) {
	m := Hot()
	first, last := m.Entry(0), m.Entry(m.Len()-1)
	assert.InDelta(t, 0.0416, first.R, 1e-9)
	assert.Equal(t, 0.0, first.G)
	assert.Equal(t, 0.0, first.B)
	assert.Equal(t, 1.0, last.R)
	assert.Equal(t, 1.0, last.G)
	assert.Equal(t, 1.0, last.B)
}

func TestMap_At(t *testing.T) {
	m := Gray()
	assert.Equal(t, m.Entry(0), m.At(-1))
	assert.Equal(t, m.Entry(m.Len()-1), m.At(2))
	assert.Equal(t, m.Entry(128), m.At(0.5))
	assert.Equal(t, m.Entry(0), m.At(math.NaN()))
	assert.Len(t, m.Colors(), m.Len())
}
