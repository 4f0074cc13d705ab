package plotfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quickplot/internal/array"
	"quickplot/internal/artifact"
	"quickplot/internal/colormap"
	"quickplot/internal/figure"
)

// DefaultFormat is used when the backend is given no format.
const DefaultFormat = "png"

var ErrFormat = errors.New("plotfile: unsupported format")

var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true, "png": true,
	"svg": true, "tex": true, "tif": true, "tiff": true,
}

// ParseFormat validates an output format name, with or without a dot.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(s, "."))
	if f == "" {
		return DefaultFormat, nil
	}
	if !formats[f] {
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
	return f, nil
}

// Backend writes every figure to <store>/<prefix>-<n>.<format> each time it
// is drawn. Without a store, Draw only renders.
type Backend struct {
	store   *artifact.Store
	format  string
	prefix  string
	figures []*Figure
}

var _ figure.Backend = (*Backend)(nil)

// New creates a file backend. prefix names the files; it defaults to
// "figure".
func New(store *artifact.Store, format, prefix string) (*Backend, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "figure"
	}
	return &Backend{store: store, format: f, prefix: prefix}, nil
}

// NewFigure implements figure.Backend.
func (b *Backend) NewFigure(opts figure.Options) (figure.Figure, error) {
	opts = opts.Normalized()
	f := &Figure{backend: b, id: len(b.figures), opts: opts}
	for i := 0; i < opts.Rows*opts.Cols; i++ {
		f.axes = append(f.axes, &axes{})
	}
	b.figures = append(b.figures, f)
	return f, nil
}

// Figures returns the figures in creation order.
func (b *Backend) Figures() []*Figure {
	return b.figures
}

// Figure records what was drawn and renders it on demand.
type Figure struct {
	backend *Backend
	id      int
	opts    figure.Options
	axes    []*axes
	path    string
	draws   int
}

var _ figure.Figure = (*Figure)(nil)

func (f *Figure) Axes(i int) (figure.Axes, error) {
	if i < 0 || i >= len(f.axes) {
		return nil, fmt.Errorf("%w: %d", figure.ErrAxes, i)
	}
	return f.axes[i], nil
}

func (f *Figure) NumAxes() int { return len(f.axes) }

func (f *Figure) Colorbar(img figure.Image) (figure.Colorbar, error) {
	im, ok := img.(*image)
	if !ok || im == nil {
		return nil, fmt.Errorf("plotfile: colorbar needs an image drawn by this backend, got %T", img)
	}
	cb := &colorbar{image: im}
	im.axes.cbar = cb
	return cb, nil
}

// OnKey is a no-op: files take no input.
func (f *Figure) OnKey(figure.KeyHandler) {}

// Draw renders the figure and, with a store, writes it to Path.
func (f *Figure) Draw() error {
	f.draws++
	if f.backend.store == nil {
		return f.render(discard{}, f.backend.format)
	}
	if f.path == "" {
		p, err := f.backend.store.Path(fmt.Sprintf("%s-%d", f.backend.prefix, f.id), f.backend.format)
		if err != nil {
			return err
		}
		f.path = p
	}
	return f.write(f.path, f.backend.format)
}

// Save writes the figure to path in the format named by its extension.
func (f *Figure) Save(path string) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	return f.write(path, format)
}

// Path returns the file Draw writes to, empty before the first Draw.
func (f *Figure) Path() string { return f.path }

// Draws returns how many times the figure was drawn.
func (f *Figure) Draws() int { return f.draws }

func (f *Figure) write(path, format string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plotfile: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("plotfile: %w", cerr)
		}
	}()
	return f.render(out, format)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

type axes struct {
	title  string
	hidden bool
	image  *image
	rgb    *array.RGB
	lines  []*line
	xlim   *array.Limits
	ylim   *array.Limits
	cbar   *colorbar
}

func (a *axes) ImShow(m array.Matrix, lim array.Limits, cmap *colormap.Map) figure.Image {
	if cmap == nil {
		cmap = colormap.Hot()
	}
	a.image = &image{axes: a, data: m, lim: lim, cmap: cmap}
	return a.image
}

func (a *axes) ImShowRGB(rgb *array.RGB) { a.rgb = rgb }

func (a *axes) Plot(x, y []float64) figure.Line {
	l := &line{x: x, y: y}
	a.lines = append(a.lines, l)
	return l
}

func (a *axes) SetXLim(lim array.Limits) { a.xlim = &lim }
func (a *axes) SetYLim(lim array.Limits) { a.ylim = &lim }
func (a *axes) SetTitle(title string)    { a.title = title }
func (a *axes) Hide()                    { a.hidden = true }

type image struct {
	axes *axes
	data array.Matrix
	lim  array.Limits
	cmap *colormap.Map
}

func (im *image) SetData(m array.Matrix)     { im.data = m }
func (im *image) SetLimits(lim array.Limits) { im.lim = lim }
func (im *image) Limits() array.Limits       { return im.lim }

type line struct {
	x, y []float64
}

func (l *line) SetData(x, y []float64) { l.x, l.y = x, y }

type colorbar struct {
	image *image
}

func (cb *colorbar) SetLimits(lim array.Limits) { cb.image.lim = lim }

func (cb *colorbar) Remove() {
	if cb.image.axes.cbar == cb {
		cb.image.axes.cbar = nil
	}
}
