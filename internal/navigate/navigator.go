package navigate

import (
	"fmt"
	"log/slog"

	"quickplot/internal/array"
	"quickplot/internal/figure"
)

// navigator is the state shared by the stack variants.
type navigator struct {
	cfg    Config
	cursor *Cursor
	fig    figure.Figure
	ax     figure.Axes
	show   func(i int)
}

func newNavigator(b figure.Backend, n int, cfg Config) (*navigator, error) {
	if b == nil {
		return nil, ErrNoBackend
	}
	cursor, err := NewCursor(n)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	fig, err := b.NewFigure(figure.Options{Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return nil, fmt.Errorf("navigate: new figure: %w", err)
	}
	ax, err := fig.Axes(0)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	return &navigator{cfg: cfg, cursor: cursor, fig: fig, ax: ax}, nil
}

// HandleKey implements figure.KeyHandler.
func (n *navigator) HandleKey(key string) (bool, error) {
	delta, ok := n.cfg.Keys.Delta(key)
	if !ok {
		return false, nil
	}
	pos := n.cursor.Move(delta)
	slog.Debug("navigate: moved", "key", key, "pos", pos, "len", n.cursor.Len())
	n.show(pos)
	return true, n.fig.Draw()
}

// Pos returns the index of the displayed element.
func (n *navigator) Pos() int { return n.cursor.Pos() }

// Len returns the stack length.
func (n *navigator) Len() int { return n.cursor.Len() }

// Title returns the title of the displayed element.
func (n *navigator) Title() string { return n.cfg.title(n.cursor.Pos()) }

// Figure returns the figure the navigator draws on.
func (n *navigator) Figure() figure.Figure { return n.fig }

// ImageStack shows one image of a stack at a time, all on the colour scale
// of the whole stack.
type ImageStack struct {
	*navigator
	stack []array.Matrix
	image figure.Image
	lim   array.Limits
}

var _ figure.KeyHandler = (*ImageStack)(nil)

// NewImageStack displays stack[0] and starts listening for navigation keys.
func NewImageStack(b figure.Backend, stack []array.Matrix, cfg Config) (*ImageStack, error) {
	if err := cfg.Validate(len(stack), nil); err != nil {
		return nil, err
	}
	lim, err := array.Extent(stack)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	nav, err := newNavigator(b, len(stack), cfg)
	if err != nil {
		return nil, err
	}

	s := &ImageStack{navigator: nav, stack: stack, lim: lim}
	s.image = nav.ax.ImShow(stack[0], lim, nav.cfg.Colormap)
	if _, err := nav.fig.Colorbar(s.image); err != nil {
		return nil, fmt.Errorf("navigate: colorbar: %w", err)
	}
	nav.ax.SetTitle(nav.cfg.title(0))
	nav.show = s.show
	nav.fig.OnKey(s)
	if err := nav.fig.Draw(); err != nil {
		return nil, fmt.Errorf("navigate: draw: %w", err)
	}
	return s, nil
}

func (s *ImageStack) show(i int) {
	s.image.SetData(s.stack[i])
	s.ax.SetTitle(s.cfg.title(i))
}

// Limits returns the colour scale of the stack.
func (s *ImageStack) Limits() array.Limits { return s.lim }

// PlotStack shows one line of a stack at a time on fixed axes.
type PlotStack struct {
	*navigator
	stack      []array.Series
	line       figure.Line
	xlim, ylim array.Limits
}

var _ figure.KeyHandler = (*PlotStack)(nil)

// NewPlotStack displays stack[0] and starts listening for navigation keys.
func NewPlotStack(b figure.Backend, stack []array.Series, cfg Config) (*PlotStack, error) {
	lens := make([]int, len(stack))
	for i, s := range stack {
		lens[i] = len(s)
	}
	if err := cfg.Validate(len(stack), lens); err != nil {
		return nil, err
	}

	ylim, err := array.Extent(stack)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	if cfg.YLim != nil {
		ylim = *cfg.YLim
	}
	xlim, err := xExtent(stack, cfg.X)
	if err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	if cfg.XLim != nil {
		xlim = *cfg.XLim
	}

	nav, err := newNavigator(b, len(stack), cfg)
	if err != nil {
		return nil, err
	}
	s := &PlotStack{navigator: nav, stack: stack, xlim: xlim, ylim: ylim}
	s.line = nav.ax.Plot(s.x(0), stack[0])
	nav.ax.SetXLim(xlim)
	nav.ax.SetYLim(ylim)
	nav.ax.SetTitle(nav.cfg.title(0))
	nav.show = s.show
	nav.fig.OnKey(s)
	if err := nav.fig.Draw(); err != nil {
		return nil, fmt.Errorf("navigate: draw: %w", err)
	}
	return s, nil
}

func (s *PlotStack) show(i int) {
	s.line.SetData(s.x(i), s.stack[i])
	s.ax.SetTitle(s.cfg.title(i))
}

func (s *PlotStack) x(i int) []float64 {
	if s.cfg.X != nil {
		return s.cfg.X[i]
	}
	return array.Index(len(s.stack[i]))
}

// Limits returns the fixed x and y axis limits.
func (s *PlotStack) Limits() (x, y array.Limits) { return s.xlim, s.ylim }

func xExtent(stack []array.Series, xs [][]float64) (array.Limits, error) {
	coords := make([]array.Series, len(stack))
	for i, s := range stack {
		if xs != nil {
			coords[i] = xs[i]
		} else {
			coords[i] = array.Index(len(s))
		}
	}
	return array.Extent(coords)
}
