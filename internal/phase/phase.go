// Package phase encodes complex-valued arrays as colour: phase becomes hue and
// magnitude becomes either saturation or value depending on the theme.
package phase

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"quickplot/internal/array"
)

var (
	ErrUnknownTheme = errors.New("phase: unknown theme")
	ErrNorm         = errors.New("phase: normalisation must be a non-negative number")
)

// Theme selects which HSV channel carries magnitude.
type Theme string

const (
	// Dark keeps saturation at 1 and maps magnitude to value (black background).
	Dark Theme = "dark"
	// Light keeps value at 1 and maps magnitude to saturation (white background).
	Light Theme = "light"
)

// ParseTheme accepts "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate rejects themes other than Dark and Light.
func (t Theme) Validate() error {
	switch t {
	case Dark, Light:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTheme, string(t))
}

// Options tunes Encode.
type Options struct {
	// Norm caps the magnitude mapped to full intensity. Zero means the
	// largest magnitude found in the input.
	Norm float64
}

// Encode maps z to an RGB field of the same shape. z must be rectangular.
func Encode(z array.Complex, theme Theme, opts Options) (*array.RGB, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	if err := z.Validate(); err != nil {
		return nil, fmt.Errorf("phase: %w", err)
	}
	if opts.Norm < 0 || math.IsNaN(opts.Norm) {
		return nil, fmt.Errorf("%w: got %g", ErrNorm, opts.Norm)
	}
	norm := opts.Norm
	if norm == 0 {
		norm = z.MaxAbs()
	}

	rows, cols := z.Size()
	out := array.NewRGB(rows, cols)
	for r, row := range z {
		for c, v := range row {
			out.Set(r, c, Color(v, norm, theme))
		}
	}
	return out, nil
}

// Color encodes a single value. A zero norm yields zero magnitude.
func Color(v complex128, norm float64, theme Theme) colorful.Color {
	mag := 0.0
	if norm > 0 {
		mag = array.Clamp01(cmplx.Abs(v) / norm)
	}
	hue := Hue(v) * 360
	if theme == Light {
		return colorful.Hsv(hue, mag, 1)
	}
	return colorful.Hsv(hue, 1, mag)
}

// Hue returns the phase of v wrapped into [0,1).
func Hue(v complex128) float64 {
	h := math.Mod(cmplx.Phase(v)/(2*math.Pi), 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}
