package plotfile

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
)

// colorMap adapts a colormap.Map to gonum's palette.ColorMap.
type colorMap struct {
	m     *colormap.Map
	lim   array.Limits
	alpha float64
}

var _ palette.ColorMap = (*colorMap)(nil)

func newColorMap(m *colormap.Map, lim array.Limits) *colorMap {
	return &colorMap{m: m, lim: lim, alpha: 1}
}

func (c *colorMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < c.lim.Min:
		return nil, palette.ErrUnderflow
	case v > c.lim.Max:
		return nil, palette.ErrOverflow
	}
	return c.withAlpha(c.m.At(c.lim.Normalize(v))), nil
}

func (c *colorMap) withAlpha(col colorful.Color) color.Color {
	if c.alpha >= 1 {
		return col
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(c.alpha * 255))}
}

func (c *colorMap) Max() float64       { return c.lim.Max }
func (c *colorMap) Min() float64       { return c.lim.Min }
func (c *colorMap) SetMax(v float64)   { c.lim.Max = v }
func (c *colorMap) SetMin(v float64)   { c.lim.Min = v }
func (c *colorMap) Alpha() float64     { return c.alpha }
func (c *colorMap) SetAlpha(a float64) { c.alpha = array.Clamp01(a) }

func (c *colorMap) Palette(n int) palette.Palette {
	cols := make([]colorful.Color, n)
	for i := range cols {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cols[i] = c.m.At(t)
	}
	return colormap.New(c.m.Name, cols)
}

// displayLimits widens a zero-width range so gonum can divide by its span.
func displayLimits(lim array.Limits) array.Limits {
	if lim.Span() > 0 {
		return lim
	}
	return array.Limits{Min: lim.Min - 0.5, Max: lim.Max + 0.5}
}
