// Package multiscale displays a growing collection of quantitative images,
// one figure each, while keeping a single colour scale across all of them.
//
// Registering an image widens the shared bounds if needed. Only when they
// widen are the earlier figures re-rendered; the colour bars of every figure
// are then rebuilt from the current rendering, because some backends do not
// refresh a bar's range when the mapped data changes underneath it.
package multiscale

import (
	"errors"
	"fmt"
	"log/slog"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
	"quickplot/internal/figure"
)

var (
	ErrEmptyImage     = errors.New("multiscale: empty image")
	ErrLengthMismatch = errors.New("multiscale: more entries given than registered images")
	ErrNoBackend      = errors.New("multiscale: nil backend")
)

// Config holds the optional settings of a Synchronizer.
type Config struct {
	// Colormap used for every image. Default: colormap.Hot().
	Colormap *colormap.Map
	// Width and Height of each figure in inches. Default: 7 x 7.
	Width  float64
	Height float64
}

func (c Config) withDefaults() Config {
	if c.Colormap == nil {
		c.Colormap = colormap.Hot()
	}
	if c.Width <= 0 {
		c.Width = 7
	}
	if c.Height <= 0 {
		c.Height = 7
	}
	return c
}

type entry struct {
	data  array.Matrix
	fig   figure.Figure
	ax    figure.Axes
	image figure.Image
	cbar  figure.Colorbar
}

// Synchronizer owns one figure per registered image.
type Synchronizer struct {
	backend  figure.Backend
	cfg      Config
	entries  []*entry
	lim      array.Limits
	rescales int
}

// New returns an empty Synchronizer drawing on backend.
func New(backend figure.Backend, cfg Config) (*Synchronizer, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	return &Synchronizer{backend: backend, cfg: cfg.withDefaults()}, nil
}

// NewFromStack returns a Synchronizer with every image of stack registered.
func NewFromStack(backend figure.Backend, stack []array.Matrix, cfg Config) (*Synchronizer, error) {
	s, err := New(backend, cfg)
	if err != nil {
		return nil, err
	}
	for i, m := range stack {
		if err := s.Register(m); err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
	}
	return s, nil
}

// Register displays m in a new figure and brings every figure to the shared
// scale.
func (s *Synchronizer) Register(m array.Matrix) error {
	ext, err := m.Extent()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyImage, err)
	}
	fig, err := s.backend.NewFigure(figure.Options{Width: s.cfg.Width, Height: s.cfg.Height})
	if err != nil {
		return fmt.Errorf("multiscale: new figure: %w", err)
	}
	ax, err := fig.Axes(0)
	if err != nil {
		return fmt.Errorf("multiscale: %w", err)
	}

	widened := false
	if len(s.entries) == 0 {
		s.lim = ext
	} else {
		s.lim, widened = s.lim.Widen(ext)
	}
	e := &entry{data: m, fig: fig, ax: ax}
	s.entries = append(s.entries, e)

	if widened {
		if err := s.rescale(); err != nil {
			return err
		}
	} else {
		e.image = ax.ImShow(m, s.lim, s.cfg.Colormap)
		if e.cbar, err = fig.Colorbar(e.image); err != nil {
			return fmt.Errorf("multiscale: colorbar: %w", err)
		}
	}

	if err := s.harmonize(); err != nil {
		return err
	}
	return s.drawAll()
}

// rescale renders every entry at the current bounds.
func (s *Synchronizer) rescale() error {
	s.rescales++
	slog.Debug("multiscale: rescaling", "figures", len(s.entries), "vmin", s.lim.Min, "vmax", s.lim.Max)
	for _, e := range s.entries {
		if e.image == nil {
			e.image = e.ax.ImShow(e.data, s.lim, s.cfg.Colormap)
		} else {
			e.image.SetLimits(s.lim)
		}
		if e.cbar != nil {
			e.cbar.SetLimits(s.lim)
			continue
		}
		cb, err := e.fig.Colorbar(e.image)
		if err != nil {
			return fmt.Errorf("multiscale: colorbar: %w", err)
		}
		e.cbar = cb
	}
	return nil
}

// harmonize rebuilds every colour bar from its rendered image.
func (s *Synchronizer) harmonize() error {
	for _, e := range s.entries {
		if e.cbar != nil {
			e.cbar.Remove()
		}
		cb, err := e.fig.Colorbar(e.image)
		if err != nil {
			return fmt.Errorf("multiscale: colorbar: %w", err)
		}
		e.cbar = cb
	}
	return nil
}

func (s *Synchronizer) drawAll() error {
	var errs []error
	for i, e := range s.entries {
		if err := e.fig.Draw(); err != nil {
			errs = append(errs, fmt.Errorf("figure %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Limits returns the shared colour scale bounds.
func (s *Synchronizer) Limits() array.Limits { return s.lim }

// Len returns the number of registered images.
func (s *Synchronizer) Len() int { return len(s.entries) }

// Rescales returns how many times the earlier figures had to be re-rendered.
func (s *Synchronizer) Rescales() int { return s.rescales }

// Figures returns the figures in registration order.
func (s *Synchronizer) Figures() []figure.Figure {
	out := make([]figure.Figure, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.fig
	}
	return out
}

// SetTitles titles the figures in registration order.
func (s *Synchronizer) SetTitles(titles []string) error {
	if len(titles) > len(s.entries) {
		return fmt.Errorf("%w: %d titles for %d images", ErrLengthMismatch, len(titles), len(s.entries))
	}
	var errs []error
	for i, title := range titles {
		s.entries[i].ax.SetTitle(title)
		if err := s.entries[i].fig.Draw(); err != nil {
			errs = append(errs, fmt.Errorf("figure %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// SaveAll writes the figures, in registration order, to paths.
func (s *Synchronizer) SaveAll(paths []string) error {
	if len(paths) > len(s.entries) {
		return fmt.Errorf("%w: %d paths for %d images", ErrLengthMismatch, len(paths), len(s.entries))
	}
	for i, p := range paths {
		if err := s.entries[i].fig.Save(p); err != nil {
			return fmt.Errorf("multiscale: save %s: %w", p, err)
		}
	}
	return nil
}
