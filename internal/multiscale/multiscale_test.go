package multiscale

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickplot/internal/array"
	"quickplot/internal/figure/figuretest"
)

// img returns a 2x2 image spanning [lo, hi].
func img(lo, hi float64) array.Matrix {
	m, _ := array.FromRows([][]float64{{lo, (lo + hi) / 2}, {hi, lo}})
	return m
}

func newSync(t *testing.T) (*Synchronizer, *figuretest.Backend) {
	t.Helper()
	b := &figuretest.Backend{}
	s, err := New(b, Config{})
	require.NoError(t, err)
	return s, b
}

func TestRegister_Example(t *testing.T) {
	s, _ := newSync(t)

	require.NoError(t, s.Register(img(0, 10)))
	assert.Equal(t, array.Limits{Min: 0, Max: 10}, s.Limits())

	require.NoError(t, s.Register(img(-5, 8)))
	assert.Equal(t, array.Limits{Min: -5, Max: 10}, s.Limits())

	require.NoError(t, s.Register(img(2, 3)))
	assert.Equal(t, array.Limits{Min: -5, Max: 10}, s.Limits())

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Rescales())
}

func TestRegister_LimitsTrackEveryPrefix(t *testing.T) {
	s, _ := newSync(t)
	rng := rand.New(rand.NewSource(7))

	var want array.Limits
	for i := 0; i < 50; i++ {
		lo := rng.Float64()*200 - 100
		hi := lo + rng.Float64()*50
		require.NoError(t, s.Register(img(lo, hi)))
		if i == 0 {
			want = array.Limits{Min: lo, Max: hi}
		} else {
			want = want.Union(array.Limits{Min: lo, Max: hi})
		}
		require.Equal(t, want, s.Limits(), "after %d registrations", i+1)
	}
}

func TestRegister_ContainedRangeSkipsRescale(t *testing.T) {
	s, b := newSync(t)

	require.NoError(t, s.Register(img(0, 100)))
	require.NoError(t, s.Register(img(10, 90)))
	require.NoError(t, s.Register(img(20, 30)))

	assert.Equal(t, 0, s.Rescales())
	for i, f := range b.Figures {
		require.Len(t, f.AxesList[0].Images, 1, "figure %d", i)
		assert.Equal(t, 0, f.AxesList[0].Images[0].LimitSets, "figure %d re-rendered", i)
	}
}

func TestRegister_WideningRescalesEarlierFigures(t *testing.T) {
	s, b := newSync(t)

	require.NoError(t, s.Register(img(0, 1)))
	require.NoError(t, s.Register(img(0, 5)))

	assert.Equal(t, 1, s.Rescales())
	first := b.Figures[0].AxesList[0].Images[0]
	assert.Equal(t, 1, first.LimitSets)
	assert.Equal(t, array.Limits{Min: 0, Max: 5}, first.Lim)

	second := b.Figures[1].AxesList[0].Images[0]
	assert.Equal(t, array.Limits{Min: 0, Max: 5}, second.Lim)
}

func TestRegister_ColorbarsMatchSharedScale(t *testing.T) {
	s, b := newSync(t)
	for _, r := range [][2]float64{{0, 1}, {-3, 0.5}, {0, 0}, {2, 9}} {
		require.NoError(t, s.Register(img(r[0], r[1])))
	}
	for i, f := range b.Figures {
		live := f.LiveColorbars()
		require.Len(t, live, 1, "figure %d", i)
		assert.Equal(t, s.Limits(), live[0].Lim, "figure %d", i)
		assert.Same(t, f.AxesList[0].Images[0], live[0].Image)
		assert.Positive(t, f.Draws)
	}
}

func TestRegister_EmptyImage(t *testing.T) {
	s, b := newSync(t)
	require.NoError(t, s.Register(img(0, 1)))

	err := s.Register(array.Matrix{})
	assert.ErrorIs(t, err, ErrEmptyImage)
	assert.ErrorIs(t, err, array.ErrEmpty)
	assert.Equal(t, 1, s.Len())
	assert.Len(t, b.Figures, 1)
}

func TestRegister_BackendFailure(t *testing.T) {
	boom := errors.New("no display")
	b := &figuretest.Backend{FailNew: boom}
	s, err := New(b, Config{})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Register(img(0, 1)), boom)
	assert.Equal(t, 0, s.Len())
}

func TestNewFromStack(t *testing.T) {
	b := &figuretest.Backend{}
	s, err := NewFromStack(b, []array.Matrix{img(1, 2), img(0, 3)}, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, array.Limits{Min: 0, Max: 3}, s.Limits())
	assert.Len(t, s.Figures(), 2)

	_, err = NewFromStack(b, []array.Matrix{img(1, 2), nil}, Config{})
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = New(nil, Config{})
	assert.ErrorIs(t, err, ErrNoBackend)
}

func TestSetTitlesAndSave(t *testing.T) {
	s, b := newSync(t)
	require.NoError(t, s.Register(img(0, 1)))
	require.NoError(t, s.Register(img(0, 2)))

	require.NoError(t, s.SetTitles([]string{"first", "second"}))
	assert.Equal(t, "first", b.Figures[0].AxesList[0].Title)
	assert.Equal(t, "second", b.Figures[1].AxesList[0].Title)

	assert.ErrorIs(t, s.SetTitles([]string{"a", "b", "c"}), ErrLengthMismatch)

	require.NoError(t, s.SaveAll([]string{"a.png", "b.png"}))
	assert.Equal(t, []string{"a.png"}, b.Figures[0].Saved)
	assert.Equal(t, []string{"b.png"}, b.Figures[1].Saved)
	assert.ErrorIs(t, s.SaveAll([]string{"a", "b", "c"}), ErrLengthMismatch)
}

func TestRegister_DrawErrorsAreReturned(t *testing.T) {
	s, b := newSync(t)
	require.NoError(t, s.Register(img(0, 1)))
	boom := errors.New("redraw failed")
	b.Figures[0].FailDraw = boom

	err := s.Register(img(0, 2))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, s.Len())
}
