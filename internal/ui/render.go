package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
	"quickplot/internal/ui/textutil"
)

const (
	halfBlock  = "▀"
	plotRune   = '•'
	labelWidth = 8
	// colorbarWidth covers the strip, its tick labels and the gaps around them.
	colorbarWidth = 4 + labelWidth
)

// render draws the axes into at most w×h cells.
func (a *termAxes) render(w, h int) string {
	if a.hidden || w < 1 || h < 2 {
		return ""
	}
	title := Styles.Title.Render(textutil.Truncate(a.title, w))
	bh := h - 1
	switch {
	case a.image != nil:
		im := a.image
		iw := w
		if a.cbar != nil {
			iw -= colorbarWidth
		}
		body := renderImage(im.data, im.lim, im.cmap, iw, bh)
		if a.cbar != nil {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", renderColorbar(im.lim, im.cmap, bh))
		}
		return title + "\n" + body
	case a.rgb != nil:
		return title + "\n" + renderRGB(a.rgb, w, bh)
	case len(a.lines) > 0:
		return title + "\n" + a.renderLines(w, bh)
	}
	return title
}

// renderImage samples m with nearest neighbour onto half-block cells, two
// pixels per cell, keeping the aspect ratio.
func renderImage(m array.Matrix, lim array.Limits, cmap *colormap.Map, maxW, maxH int) string {
	rows, cols := m.Size()
	return renderPixels(rows, cols, maxW, maxH, func(r, c int) colorful.Color {
		return cmap.At(lim.Normalize(m.At(r, c)))
	})
}

func renderRGB(rgb *array.RGB, maxW, maxH int) string {
	return renderPixels(rgb.Rows, rgb.Cols, maxW, maxH, func(r, c int) colorful.Color {
		return rgb.Get(r, c).Clamped()
	})
}

func renderPixels(rows, cols, maxW, maxH int, pixel func(r, c int) colorful.Color) string {
	if rows == 0 || cols == 0 || maxW < 1 || maxH < 1 {
		return ""
	}
	scale := math.Min(float64(maxW)/float64(cols), float64(2*maxH)/float64(rows))
	w := max(1, int(float64(cols)*scale))
	h := max(1, (int(float64(rows)*scale)+1)/2)

	out := make([]string, 0, h)
	for y := 0; y < h; y++ {
		top := (2 * y) * rows / (2 * h)
		bot := (2*y + 1) * rows / (2 * h)
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := x * cols / w
			b.WriteString(cell(pixel(top, c), pixel(bot, c)))
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func cell(top, bottom colorful.Color) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(top.Hex())).
		Background(lipgloss.Color(bottom.Hex())).
		Render(halfBlock)
}

// renderColorbar draws a vertical strip from lim.Max at the top to lim.Min
// at the bottom with tick labels at both ends and the middle.
func renderColorbar(lim array.Limits, cmap *colormap.Map, h int) string {
	if h < 1 {
		return ""
	}
	px := 2*h - 1
	frac := func(p int) float64 {
		if px == 0 {
			return 1
		}
		return 1 - float64(p)/float64(px)
	}
	out := make([]string, 0, h)
	for y := 0; y < h; y++ {
		c := cell(cmap.At(frac(2*y)), cmap.At(frac(2*y+1)))
		line := c + c
		switch y {
		case 0:
			line += " " + tick(lim.Max)
		case h - 1:
			line += " " + tick(lim.Min)
		case h / 2:
			line += " " + tick(lim.Min+lim.Span()/2)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func tick(v float64) string {
	return Styles.Label.Render(textutil.Truncate(strconv.FormatFloat(v, 'g', 4, 64), labelWidth))
}

// ytick right-aligns a y axis label against the frame.
func ytick(v float64) string {
	return Styles.Label.Render(textutil.PadLeft(strconv.FormatFloat(v, 'g', 4, 64), labelWidth-1))
}

// renderLines draws every line of the axes on a character canvas inside a
// border, with y ticks on the left and x ticks underneath.
func (a *termAxes) renderLines(w, h int) string {
	cw, ch := w-labelWidth-2, h-3
	if cw < 2 || ch < 2 {
		return ""
	}
	xlim, ylim := a.limits()

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", cw))
	}
	toCell := func(x, y float64) (int, int) {
		return int(math.Round(xlim.Normalize(x) * float64(cw-1))),
			int(math.Round((1 - ylim.Normalize(y)) * float64(ch-1)))
	}
	for _, l := range a.lines {
		n := min(len(l.x), len(l.y))
		prevOK := false
		var pc, pr int
		for i := 0; i < n; i++ {
			if !inside(xlim, l.x[i]) || !inside(ylim, l.y[i]) {
				prevOK = false
				continue
			}
			c, r := toCell(l.x[i], l.y[i])
			if prevOK {
				segment(canvas, pc, pr, c, r)
			}
			canvas[r][c] = plotRune
			pc, pr, prevOK = c, r, true
		}
	}

	rows := make([]string, ch)
	for i, row := range canvas {
		rows[i] = string(row)
	}
	box := Styles.Axes.Render(strings.Join(rows, "\n"))

	labels := make([]string, ch+2)
	labels[1] = ytick(ylim.Max)
	labels[ch] = ytick(ylim.Min)
	left := lipgloss.NewStyle().Width(labelWidth).Render(strings.Join(labels, "\n"))

	lo, hi := tick(xlim.Min), tick(xlim.Max)
	gap := max(1, cw+2-lipgloss.Width(lo)-lipgloss.Width(hi))
	xticks := strings.Repeat(" ", labelWidth) + lo + strings.Repeat(" ", gap) + hi

	return lipgloss.JoinHorizontal(lipgloss.Top, left, box) + "\n" + xticks
}

// limits returns the axis limits, falling back to the data extent.
func (a *termAxes) limits() (x, y array.Limits) {
	if a.xlim != nil && a.ylim != nil {
		return *a.xlim, *a.ylim
	}
	var xs, ys array.Limits
	first := true
	for _, l := range a.lines {
		lx, errX := array.Series(l.x).Extent()
		ly, errY := array.Series(l.y).Extent()
		if errX != nil || errY != nil {
			continue
		}
		if first {
			xs, ys, first = lx, ly, false
			continue
		}
		xs, ys = xs.Union(lx), ys.Union(ly)
	}
	if a.xlim != nil {
		xs = *a.xlim
	}
	if a.ylim != nil {
		ys = *a.ylim
	}
	return xs, ys
}

// segment fills the cells strictly between two points.
func segment(canvas [][]rune, c0, r0, c1, r1 int) {
	steps := max(abs(c1-c0), abs(r1-r0))
	for s := 1; s < steps; s++ {
		t := float64(s) / float64(steps)
		c := c0 + int(math.Round(t*float64(c1-c0)))
		r := r0 + int(math.Round(t*float64(r1-r0)))
		if canvas[r][c] == ' ' {
			canvas[r][c] = '·'
		}
	}
}

func inside(lim array.Limits, v float64) bool {
	return v >= lim.Min && v <= lim.Max
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
