// Package figuretest provides an in-memory figure.Backend that records every
// call, for testing components without a display.
package figuretest

import (
	"errors"
	"fmt"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
	"quickplot/internal/figure"
)

// Backend records every figure it creates.
type Backend struct {
	Figures []*Figure
	// FailNew makes NewFigure return this error.
	FailNew error
}

var _ figure.Backend = (*Backend)(nil)

// NewFigure implements figure.Backend.
func (b *Backend) NewFigure(opts figure.Options) (figure.Figure, error) {
	if b.FailNew != nil {
		return nil, b.FailNew
	}
	opts = opts.Normalized()
	f := &Figure{Opts: opts}
	for i := 0; i < opts.Rows*opts.Cols; i++ {
		f.AxesList = append(f.AxesList, &Axes{fig: f})
	}
	b.Figures = append(b.Figures, f)
	return f, nil
}

// Last returns the most recently created figure.
func (b *Backend) Last() *Figure {
	if len(b.Figures) == 0 {
		return nil
	}
	return b.Figures[len(b.Figures)-1]
}

// Figure records draws, colour bars and key handlers.
type Figure struct {
	Opts      figure.Options
	AxesList  []*Axes
	Colorbars []*Colorbar
	Handlers  []figure.KeyHandler
	Draws     int
	Saved     []string
	// FailDraw makes Draw return this error.
	FailDraw error
}

var _ figure.Figure = (*Figure)(nil)

func (f *Figure) Axes(i int) (figure.Axes, error) {
	if i < 0 || i >= len(f.AxesList) {
		return nil, fmt.Errorf("%w: %d", figure.ErrAxes, i)
	}
	return f.AxesList[i], nil
}

func (f *Figure) NumAxes() int { return len(f.AxesList) }

func (f *Figure) Colorbar(img figure.Image) (figure.Colorbar, error) {
	im, ok := img.(*Image)
	if !ok || im == nil {
		return nil, errors.New("figuretest: colorbar needs an image from this backend")
	}
	cb := &Colorbar{Image: im, Lim: im.Lim}
	f.Colorbars = append(f.Colorbars, cb)
	return cb, nil
}

// LiveColorbars returns the colour bars that were not removed.
func (f *Figure) LiveColorbars() []*Colorbar {
	var out []*Colorbar
	for _, cb := range f.Colorbars {
		if !cb.Removed {
			out = append(out, cb)
		}
	}
	return out
}

func (f *Figure) OnKey(h figure.KeyHandler) { f.Handlers = append(f.Handlers, h) }

// Press dispatches key to the registered handlers, like a backend event loop.
func (f *Figure) Press(key string) (bool, error) {
	return figure.Dispatch(f.Handlers, key)
}

func (f *Figure) Draw() error {
	if f.FailDraw != nil {
		return f.FailDraw
	}
	f.Draws++
	return nil
}

func (f *Figure) Save(path string) error {
	f.Saved = append(f.Saved, path)
	return nil
}

// Axes records what was drawn on it.
type Axes struct {
	fig    *Figure
	Images []*Image
	RGBs   []*array.RGB
	Lines  []*Line
	XLim   array.Limits
	YLim   array.Limits
	Title  string
	Hidden bool
}

var _ figure.Axes = (*Axes)(nil)

func (a *Axes) ImShow(m array.Matrix, lim array.Limits, cmap *colormap.Map) figure.Image {
	im := &Image{Data: m, Lim: lim, Cmap: cmap}
	a.Images = append(a.Images, im)
	return im
}

func (a *Axes) ImShowRGB(rgb *array.RGB) { a.RGBs = append(a.RGBs, rgb) }

func (a *Axes) Plot(x, y []float64) figure.Line {
	l := &Line{X: x, Y: y}
	a.Lines = append(a.Lines, l)
	return l
}

func (a *Axes) SetXLim(lim array.Limits) { a.XLim = lim }
func (a *Axes) SetYLim(lim array.Limits) { a.YLim = lim }
func (a *Axes) SetTitle(title string)    { a.Title = title }
func (a *Axes) Hide()                    { a.Hidden = true }

// Image records data and limit updates.
type Image struct {
	Data      array.Matrix
	Lim       array.Limits
	Cmap      *colormap.Map
	LimitSets int
	DataSets  int
}

func (im *Image) SetData(m array.Matrix) {
	im.Data = m
	im.DataSets++
}

func (im *Image) SetLimits(lim array.Limits) {
	im.Lim = lim
	im.LimitSets++
}

func (im *Image) Limits() array.Limits { return im.Lim }

// Line records data updates.
type Line struct {
	X, Y     []float64
	DataSets int
}

func (l *Line) SetData(x, y []float64) {
	l.X, l.Y = x, y
	l.DataSets++
}

// Colorbar records its limits and removal.
type Colorbar struct {
	Image   *Image
	Lim     array.Limits
	Removed bool
}

func (cb *Colorbar) SetLimits(lim array.Limits) { cb.Lim = lim }
func (cb *Colorbar) Remove()                    { cb.Removed = true }
