// Package grid lays out a sequence of line plots or images in the smallest
// near-square grid that holds them, all drawn on one shared value range so
// they can be compared by eye.
package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
	"quickplot/internal/figure"
)

var (
	ErrEmpty          = errors.New("grid: nothing to arrange")
	ErrUnknownMode    = errors.New("grid: unknown mode")
	ErrMixedElements  = errors.New("grid: element does not match the arranger mode")
	ErrLengthMismatch = errors.New("grid: x coordinates do not match elements")
	ErrNoBackend      = errors.New("grid: nil backend")
)

// Mode selects how every element of one Arrange call is drawn.
type Mode string

const (
	// Plot draws each element as a line; elements must be array.Series.
	Plot Mode = "plot"
	// ImShow draws each element as an image; elements must be array.Matrix.
	ImShow Mode = "imshow"
)

// ParseMode accepts "plot" or "imshow".
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Plot, ImShow:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Shape returns the grid for n cells: rows = round(sqrt(n)), and columns
// equal to rows when that is enough, otherwise ceil(n/rows).
func Shape(n int) (rows, cols int, err error) {
	if n <= 0 {
		return 0, 0, ErrEmpty
	}
	rows = int(math.Round(math.Sqrt(float64(n))))
	if rows*rows >= n {
		return rows, rows, nil
	}
	return rows, int(math.Ceil(float64(n) / float64(rows))), nil
}

// Config holds the arranger settings.
type Config struct {
	// Mode is required.
	Mode Mode
	// Colormap for ImShow mode. Default: colormap.Hot().
	Colormap *colormap.Map
	// Figure size in inches. Default: 7 x 7.
	Width  float64
	Height float64
	Title  string
}

// Layout is the result of one Arrange call.
type Layout struct {
	Figure figure.Figure
	Rows   int
	Cols   int
	Limits array.Limits
}

// Arranger draws element sequences into grids.
type Arranger struct {
	backend figure.Backend
	cfg     Config
}

// New validates cfg and returns an Arranger.
func New(backend figure.Backend, cfg Config) (*Arranger, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if _, err := ParseMode(string(cfg.Mode)); err != nil {
		return nil, err
	}
	if cfg.Colormap == nil {
		cfg.Colormap = colormap.Hot()
	}
	if cfg.Width <= 0 {
		cfg.Width = 7
	}
	if cfg.Height <= 0 {
		cfg.Height = 7
	}
	return &Arranger{backend: backend, cfg: cfg}, nil
}

// Mode returns the configured mode.
func (a *Arranger) Mode() Mode { return a.cfg.Mode }

// Arrange draws elems into a new figure. xs optionally gives the x
// coordinates of each series in Plot mode; when nil, 0..len-1 is used.
func (a *Arranger) Arrange(elems []array.Element, xs [][]float64) (*Layout, error) {
	rows, cols, err := Shape(len(elems))
	if err != nil {
		return nil, err
	}
	if err := a.check(elems, xs); err != nil {
		return nil, err
	}
	lim, err := array.Extent(elems)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}

	fig, err := a.backend.NewFigure(figure.Options{
		Rows:   rows,
		Cols:   cols,
		Width:  a.cfg.Width,
		Height: a.cfg.Height,
		Title:  a.cfg.Title,
	})
	if err != nil {
		return nil, fmt.Errorf("grid: new figure: %w", err)
	}

	for i := 0; i < rows*cols; i++ {
		ax, err := fig.Axes(i)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		if i >= len(elems) {
			ax.Hide()
			continue
		}
		switch e := elems[i].(type) {
		case array.Series:
			x := array.Index(len(e))
			if xs != nil {
				x = xs[i]
			}
			ax.Plot(x, e)
			ax.SetYLim(lim)
		case array.Matrix:
			ax.ImShow(e, lim, a.cfg.Colormap)
		}
	}
	slog.Debug("grid: arranged", "mode", a.cfg.Mode, "n", len(elems), "rows", rows, "cols", cols)

	if err := fig.Draw(); err != nil {
		return nil, fmt.Errorf("grid: draw: %w", err)
	}
	return &Layout{Figure: fig, Rows: rows, Cols: cols, Limits: lim}, nil
}

func (a *Arranger) check(elems []array.Element, xs [][]float64) error {
	for i, e := range elems {
		var ok bool
		switch a.cfg.Mode {
		case Plot:
			_, ok = e.(array.Series)
		case ImShow:
			_, ok = e.(array.Matrix)
		}
		if !ok {
			return fmt.Errorf("%w: element %d is %T in %s mode", ErrMixedElements, i, e, a.cfg.Mode)
		}
	}
	if xs == nil {
		return nil
	}
	if a.cfg.Mode != Plot {
		return fmt.Errorf("%w: x coordinates only apply in plot mode", ErrLengthMismatch)
	}
	if len(xs) != len(elems) {
		return fmt.Errorf("%w: %d coordinate sets for %d elements", ErrLengthMismatch, len(xs), len(elems))
	}
	for i, x := range xs {
		if len(x) != elems[i].Len() {
			return fmt.Errorf("%w: element %d has %d samples and %d x values", ErrLengthMismatch, i, elems[i].Len(), len(x))
		}
	}
	return nil
}
