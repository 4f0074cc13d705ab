// Package figure describes the capabilities the plotting helpers need from a
// display backend. Components never touch backend globals; they receive a
// Backend and work only with the handles it returns.
package figure

import (
	"errors"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
)

// ErrAxes is returned when an axes index is outside the figure grid.
var ErrAxes = errors.New("figure: axes index out of range")

// Options sizes a new figure. Width and Height are in inches; backends that
// render to cells scale them to their own units.
type Options struct {
	Rows   int
	Cols   int
	Width  float64
	Height float64
	Title  string
}

// Normalized fills unset fields with a single 7x7 inch axes.
func (o Options) Normalized() Options {
	if o.Rows <= 0 {
		o.Rows = 1
	}
	if o.Cols <= 0 {
		o.Cols = 1
	}
	if o.Width <= 0 {
		o.Width = 7
	}
	if o.Height <= 0 {
		o.Height = 7
	}
	return o
}

// Backend creates figures.
type Backend interface {
	NewFigure(opts Options) (Figure, error)
}

// Figure is one display surface holding a grid of axes.
type Figure interface {
	// Axes returns the i-th axes in row-major order.
	Axes(i int) (Axes, error)
	NumAxes() int
	// Colorbar attaches a new colour bar bound to a rendered image.
	Colorbar(img Image) (Colorbar, error)
	// OnKey registers a handler for key presses on this figure.
	OnKey(h KeyHandler)
	// Draw refreshes the figure after its content changed.
	Draw() error
	// Save writes the current rendering to path.
	Save(path string) error
}

// Axes is a single plotting area.
type Axes interface {
	ImShow(m array.Matrix, lim array.Limits, cmap *colormap.Map) Image
	// ImShowRGB draws a colour field as is, without a colormap.
	ImShowRGB(rgb *array.RGB)
	Plot(x, y []float64) Line
	SetXLim(lim array.Limits)
	SetYLim(lim array.Limits)
	SetTitle(title string)
	Hide()
}

// Image is a colour-mapped 2-D array drawn on an axes.
type Image interface {
	SetData(m array.Matrix)
	SetLimits(lim array.Limits)
	Limits() array.Limits
}

// Line is a 1-D series drawn on an axes.
type Line interface {
	SetData(x, y []float64)
}

// Colorbar is the legend for an Image's colour scale.
type Colorbar interface {
	SetLimits(lim array.Limits)
	Remove()
}

// KeyHandler receives key presses. Key names follow Bubble Tea's
// tea.KeyMsg.String(): "right", "left", "up", "down", "q", ...
// handled is false for keys the handler ignores.
type KeyHandler interface {
	HandleKey(key string) (handled bool, err error)
}

// KeyHandlerFunc adapts a function to KeyHandler.
type KeyHandlerFunc func(key string) (bool, error)

func (f KeyHandlerFunc) HandleKey(key string) (bool, error) { return f(key) }

// Dispatch offers key to each handler in order and stops at the first one
// that handles it.
func Dispatch(handlers []KeyHandler, key string) (bool, error) {
	for _, h := range handlers {
		if handled, err := h.HandleKey(key); handled || err != nil {
			return handled, err
		}
	}
	return false, nil
}
