package dataset

import (
	"math"
	"math/cmplx"

	"quickplot/internal/array"
)

// Gaussians returns n size×size blobs. Blob i is centred off-axis, scaled
// by i+1 and shifted down by i/2, so each one widens the value range of
// the ones before it.
func Gaussians(n, size int) []array.Matrix {
	out := make([]array.Matrix, n)
	for i := range out {
		m := array.NewMatrix(size, size)
		angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
		cx := 0.3 * math.Cos(angle)
		cy := 0.3 * math.Sin(angle)
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				x, y := coord(c, size)-cx, coord(r, size)-cy
				m[r][c] = float64(i+1)*math.Exp(-(x*x+y*y)/0.1) - float64(i)/2
			}
		}
		out[i] = m
	}
	return out
}

// Waves returns n sine series of the given length with growing frequency
// and amplitude.
func Waves(n, length int) []array.Series {
	out := make([]array.Series, n)
	for i := range out {
		s := make(array.Series, length)
		amp := 1 + float64(i)/float64(max(n, 1))
		for k := range s {
			s[k] = amp * math.Sin(2*math.Pi*float64(i+1)*float64(k)/float64(max(length, 1)))
		}
		out[i] = s
	}
	return out
}

// Vortex returns a size×size field z = w²·exp(-|w|²) over w in [-2,2]²,
// whose phase winds twice around the origin.
func Vortex(size int) array.Complex {
	out := make(array.Complex, size)
	for r := range out {
		out[r] = make([]complex128, size)
		for c := range out[r] {
			w := complex(2*coord(c, size), -2*coord(r, size))
			out[r][c] = w * w * cmplx.Exp(complex(-real(w)*real(w)-imag(w)*imag(w), 0))
		}
	}
	return out
}

// coord maps index i of n onto [-1,1].
func coord(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return 2*float64(i)/float64(n-1) - 1
}
