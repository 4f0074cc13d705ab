package plotfile

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"quickplot/internal/array"
)

const (
	colorbarWidth = 0.9 * vg.Inch
	titleHeight   = 0.4 * vg.Inch
	tilePad       = 2 * vg.Millimeter
)

// render draws the figure onto a canvas of the given format and writes it
// to w.
func (f *Figure) render(w io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(vg.Length(f.opts.Width)*vg.Inch, vg.Length(f.opts.Height)*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("plotfile: %w", err)
	}
	dc := draw.New(c)
	if f.opts.Title != "" {
		sty := plot.New().Title.TextStyle
		sty.Font.Size = vg.Points(14)
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y}, f.opts.Title)
		dc = draw.Crop(dc, 0, 0, 0, -titleHeight)
	}

	plots := make([][]*plot.Plot, f.opts.Rows)
	bars := make([][]*plot.Plot, f.opts.Rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, f.opts.Cols)
		bars[j] = make([]*plot.Plot, f.opts.Cols)
		for i := range plots[j] {
			ax := f.axes[j*f.opts.Cols+i]
			if ax.hidden {
				continue
			}
			p, cb, err := ax.build()
			if err != nil {
				return fmt.Errorf("plotfile: axes %d: %w", j*f.opts.Cols+i, err)
			}
			plots[j][i], bars[j][i] = p, cb
		}
	}

	tiles := draw.Tiles{
		Rows: f.opts.Rows, Cols: f.opts.Cols,
		PadX: tilePad, PadY: tilePad,
		PadTop: tilePad, PadBottom: tilePad, PadLeft: tilePad, PadRight: tilePad,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i, p := range plots[j] {
			if p == nil {
				continue
			}
			tc := canvases[j][i]
			if cb := bars[j][i]; cb != nil {
				width := tc.Max.X - tc.Min.X
				cb.Draw(draw.Crop(tc, width-colorbarWidth, 0, 0, 0))
				tc = draw.Crop(tc, 0, -colorbarWidth, 0, 0)
			}
			p.Draw(tc)
		}
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("plotfile: write %s: %w", format, err)
	}
	return nil
}

// build turns the recorded axes into a gonum plot, plus a colour bar plot
// when one is attached.
func (a *axes) build() (p, bar *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = a.title

	if im := a.image; im != nil {
		lim := displayLimits(im.lim)
		table := im.cmap.Table()
		hm := plotter.NewHeatMap(matrixGrid{im.data}, im.cmap)
		hm.Min, hm.Max = lim.Min, lim.Max
		if len(table) > 0 {
			hm.Underflow, hm.Overflow = table[0], table[len(table)-1]
		}
		p.Add(hm)

		if a.cbar != nil {
			bar = plot.New()
			bar.HideX()
			bar.Add(&plotter.ColorBar{ColorMap: newColorMap(im.cmap, lim), Vertical: true, Colors: im.cmap.Len()})
		}
	}

	if a.rgb != nil && a.rgb.Rows > 0 && a.rgb.Cols > 0 {
		p.Add(plotter.NewImage(a.rgb, 0, 0, float64(a.rgb.Cols), float64(a.rgb.Rows)))
	}

	for i, l := range a.lines {
		n := min(len(l.x), len(l.y))
		xys := make(plotter.XYs, n)
		for k := range xys {
			xys[k] = plotter.XY{X: l.x[k], Y: l.y[k]}
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return nil, nil, err
		}
		ln.Color = plotutil.Color(i)
		p.Add(ln)
	}

	if a.xlim != nil {
		p.X.Min, p.X.Max = a.xlim.Min, a.xlim.Max
	}
	if a.ylim != nil {
		p.Y.Min, p.Y.Max = a.ylim.Min, a.ylim.Max
	}
	unitRange(&p.X.Min, &p.X.Max)
	unitRange(&p.Y.Min, &p.Y.Max)
	return p, bar, nil
}

// unitRange gives an axis without data the range [0,1].
func unitRange(lo, hi *float64) {
	if math.IsInf(*lo, 0) || math.IsInf(*hi, 0) {
		*lo, *hi = 0, 1
	}
}

// matrixGrid exposes a Matrix as a plotter.GridXYZ with row 0 at the top,
// the way images are shown.
type matrixGrid struct {
	m array.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	rows, cols := g.m.Size()
	return cols, rows
}

func (g matrixGrid) Z(c, r int) float64 {
	rows, _ := g.m.Size()
	return g.m.At(rows-1-r, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }
