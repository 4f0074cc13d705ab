package array

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour field with the same shape as the array it was derived from.
// Each element carries three channels in [0,1]. It implements image.Image
// with x as column and y as row.
type RGB struct {
	Rows, Cols int
	Pix        []colorful.Color
}

// NewRGB returns a black rows x cols colour field.
func NewRGB(rows, cols int) *RGB {
	return &RGB{Rows: rows, Cols: cols, Pix: make([]colorful.Color, rows*cols)}
}

// Set stores the colour at row r, column c.
func (f *RGB) Set(r, c int, col colorful.Color) {
	f.Pix[r*f.Cols+c] = col
}

// Get returns the colour at row r, column c.
func (f *RGB) Get(r, c int) colorful.Color {
	return f.Pix[r*f.Cols+c]
}

// Channels returns the R, G and B channels at row r, column c.
func (f *RGB) Channels(r, c int) [3]float64 {
	col := f.Get(r, c)
	return [3]float64{col.R, col.G, col.B}
}

func (f *RGB) ColorModel() color.Model { return color.RGBAModel }

func (f *RGB) Bounds() image.Rectangle { return image.Rect(0, 0, f.Cols, f.Rows) }

func (f *RGB) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.Cols || y >= f.Rows {
		return color.RGBA{}
	}
	r, g, b := f.Get(y, x).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
