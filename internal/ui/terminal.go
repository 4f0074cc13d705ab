package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quickplot/internal/array"
	"quickplot/internal/artifact"
	"quickplot/internal/colormap"
	"quickplot/internal/figure"
)

// Figure sizes are given in inches; these convert them to terminal cells.
const (
	colsPerInch  = 8
	linesPerInch = 3
)

// ErrNoFigures is returned by Run when nothing was drawn.
var ErrNoFigures = errors.New("ui: no figures to show")

// Terminal is a figure.Backend drawing into the terminal. Figures are built
// up front and shown by Run, one at a time.
type Terminal struct {
	figures []*TermFigure
}

var _ figure.Backend = (*Terminal)(nil)

// NewTerminal returns a backend with no figures.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// NewFigure implements figure.Backend.
func (t *Terminal) NewFigure(opts figure.Options) (figure.Figure, error) {
	opts = opts.Normalized()
	f := &TermFigure{id: len(t.figures), opts: opts}
	for i := 0; i < opts.Rows*opts.Cols; i++ {
		f.axes = append(f.axes, &termAxes{})
	}
	t.figures = append(t.figures, f)
	return f, nil
}

// Figures returns the figures in creation order.
func (t *Terminal) Figures() []*TermFigure {
	return t.figures
}

// Run shows the figures until the user quits or ctx is cancelled. store
// receives figures saved with SPC s; it may be nil.
func (t *Terminal) Run(ctx context.Context, store *artifact.Store) error {
	if len(t.figures) == 0 {
		return ErrNoFigures
	}
	p := tea.NewProgram(NewAppModel(t, store).AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// TermFigure is a figure rendered as text.
type TermFigure struct {
	id       int
	opts     figure.Options
	axes     []*termAxes
	handlers []figure.KeyHandler
	draws    int
	// width and height override the size from opts once the terminal size
	// is known.
	width  int
	height int
}

var _ figure.Figure = (*TermFigure)(nil)

func (f *TermFigure) Axes(i int) (figure.Axes, error) {
	if i < 0 || i >= len(f.axes) {
		return nil, fmt.Errorf("%w: %d", figure.ErrAxes, i)
	}
	return f.axes[i], nil
}

func (f *TermFigure) NumAxes() int { return len(f.axes) }

func (f *TermFigure) Colorbar(img figure.Image) (figure.Colorbar, error) {
	im, ok := img.(*termImage)
	if !ok || im == nil {
		return nil, fmt.Errorf("ui: colorbar needs an image drawn by this backend, got %T", img)
	}
	cb := &termColorbar{image: im}
	im.axes.cbar = cb
	return cb, nil
}

func (f *TermFigure) OnKey(h figure.KeyHandler) { f.handlers = append(f.handlers, h) }

// HandleKey offers key to the figure's handlers.
func (f *TermFigure) HandleKey(key string) (bool, error) {
	return figure.Dispatch(f.handlers, key)
}

// Draw records a refresh. The event loop renders after every message, so
// there is nothing to push.
func (f *TermFigure) Draw() error {
	f.draws++
	return nil
}

// Save writes the current rendering, ANSI colours included, to path.
func (f *TermFigure) Save(path string) error {
	return os.WriteFile(path, []byte(f.Render()+"\n"), 0o644)
}

// Title returns the figure title, or the first axes title.
func (f *TermFigure) Title() string {
	if f.opts.Title != "" {
		return f.opts.Title
	}
	for _, ax := range f.axes {
		if ax.title != "" {
			return ax.title
		}
	}
	return fmt.Sprintf("figure %d", f.id)
}

// SetSize sets the cell budget of the figure.
func (f *TermFigure) SetSize(width, height int) {
	f.width, f.height = width, height
}

func (f *TermFigure) size() (w, h int) {
	if f.width > 0 && f.height > 0 {
		return f.width, f.height
	}
	return int(f.opts.Width * colsPerInch), int(f.opts.Height * linesPerInch)
}

// Render draws every axes into a block of text.
func (f *TermFigure) Render() string {
	w, h := f.size()
	if f.opts.Title != "" {
		h--
	}
	aw, ah := w/f.opts.Cols, h/f.opts.Rows
	rows := make([]string, 0, f.opts.Rows)
	for r := 0; r < f.opts.Rows; r++ {
		cells := make([]string, 0, f.opts.Cols)
		for c := 0; c < f.opts.Cols; c++ {
			block := f.axes[r*f.opts.Cols+c].render(aw, ah)
			cells = append(cells, lipgloss.Place(aw, ah, lipgloss.Left, lipgloss.Top, block))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if f.opts.Title != "" {
		return Styles.FigureTitle.Render(f.opts.Title) + "\n" + body
	}
	return body
}

type termAxes struct {
	title  string
	hidden bool
	image  *termImage
	rgb    *array.RGB
	lines  []*termLine
	xlim   *array.Limits
	ylim   *array.Limits
	cbar   *termColorbar
}

func (a *termAxes) ImShow(m array.Matrix, lim array.Limits, cmap *colormap.Map) figure.Image {
	if cmap == nil {
		cmap = colormap.Hot()
	}
	a.image = &termImage{axes: a, data: m, lim: lim, cmap: cmap}
	return a.image
}

func (a *termAxes) ImShowRGB(rgb *array.RGB) { a.rgb = rgb }

func (a *termAxes) Plot(x, y []float64) figure.Line {
	l := &termLine{x: x, y: y}
	a.lines = append(a.lines, l)
	return l
}

func (a *termAxes) SetXLim(lim array.Limits) { a.xlim = &lim }
func (a *termAxes) SetYLim(lim array.Limits) { a.ylim = &lim }
func (a *termAxes) SetTitle(title string)    { a.title = title }
func (a *termAxes) Hide()                    { a.hidden = true }

type termImage struct {
	axes *termAxes
	data array.Matrix
	lim  array.Limits
	cmap *colormap.Map
}

func (im *termImage) SetData(m array.Matrix)     { im.data = m }
func (im *termImage) SetLimits(lim array.Limits) { im.lim = lim }
func (im *termImage) Limits() array.Limits       { return im.lim }

type termLine struct {
	x, y []float64
}

func (l *termLine) SetData(x, y []float64) { l.x, l.y = x, y }

// termColorbar mirrors its image's limits, like a colour bar bound to a
// mappable.
type termColorbar struct {
	image *termImage
}

func (cb *termColorbar) SetLimits(lim array.Limits) { cb.image.lim = lim }

func (cb *termColorbar) Remove() {
	if cb.image.axes.cbar == cb {
		cb.image.axes.cbar = nil
	}
}
