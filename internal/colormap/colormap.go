// Package colormap builds colour lookup tables: cyclic maps for phase-like
// data and the sequential maps used by the image helpers.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSize is the number of entries in the named maps.
const DefaultSize = 256

var (
	ErrResolution      = errors.New("colormap: resolution must be at least 2")
	ErrUnknownSpace    = errors.New("colormap: unknown colour space")
	ErrUnknownColormap = errors.New("colormap: unknown colormap")
)

// Map is an ordered table of colours sampled uniformly over [0,1].
type Map struct {
	Name   string
	colors []colorful.Color
}

// New wraps a colour table. The table is copied.
func New(name string, colors []colorful.Color) *Map {
	return &Map{Name: name, colors: append([]colorful.Color(nil), colors...)}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.colors) }

// Entry returns the i-th colour of the table.
func (m *Map) Entry(i int) colorful.Color { return m.colors[i] }

// Table returns a copy of the colour table.
func (m *Map) Table() []colorful.Color {
	return append([]colorful.Color(nil), m.colors...)
}

// At returns the entry nearest to t, with t clamped to [0,1].
func (m *Map) At(t float64) colorful.Color {
	if len(m.colors) == 0 {
		return colorful.Color{}
	}
	switch {
	case math.IsNaN(t) || t <= 0:
		return m.colors[0]
	case t >= 1:
		return m.colors[len(m.colors)-1]
	}
	return m.colors[int(t*float64(len(m.colors)-1)+0.5)]
}

// Colors implements gonum's palette.Palette.
func (m *Map) Colors() []color.Color {
	out := make([]color.Color, len(m.colors))
	for i, c := range m.colors {
		out[i] = c
	}
	return out
}

// Named resolves a colormap by name: hot, gray, cyclic (HSLuv) or
// cyclic-hpluv.
func Named(name string) (*Map, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hot":
		return Hot(), nil
	case "gray", "grey":
		return Gray(), nil
	case "cyclic", "cyclic-hsluv":
		return Cyclic(DefaultSize, HSLuv)
	case "cyclic-hpluv":
		return Cyclic(DefaultSize, HPLuv)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// Hot is the black, red, yellow, white ramp.
func Hot() *Map {
	colors := make([]colorful.Color, DefaultSize)
	for i := range colors {
		t := float64(i) / float64(DefaultSize-1)
		colors[i] = colorful.Color{
			R: lerp(0.0416, 1, ramp(t, 0, 0.365079)),
			G: ramp(t, 0.365079, 0.746032),
			B: ramp(t, 0.746032, 1),
		}
	}
	return &Map{Name: "hot", colors: colors}
}

// Gray is the black to white ramp.
func Gray() *Map {
	colors := make([]colorful.Color, DefaultSize)
	for i := range colors {
		t := float64(i) / float64(DefaultSize-1)
		colors[i] = colorful.Color{R: t, G: t, B: t}
	}
	return &Map{Name: "gray", colors: colors}
}

// ramp rises linearly from 0 at lo to 1 at hi and is flat outside.
func ramp(t, lo, hi float64) float64 {
	switch {
	case t <= lo:
		return 0
	case t >= hi:
		return 1
	}
	return (t - lo) / (hi - lo)
}

func lerp(a, b, x float64) float64 { return a*(1-x) + b*x }

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
