package array

import "gonum.org/v1/gonum/floats"

// Series is 1-D line data.
type Series []float64

// Len returns the number of samples.
func (s Series) Len() int { return len(s) }

// Extent returns the minimum and maximum sample.
func (s Series) Extent() (Limits, error) {
	if len(s) == 0 {
		return Limits{}, ErrEmpty
	}
	return Limits{Min: floats.Min(s), Max: floats.Max(s)}, nil
}

// Index returns the default x coordinates 0..n-1 for n samples.
func Index(n int) []float64 {
	xs := make([]float64, n)
	if n < 2 {
		return xs
	}
	floats.Span(xs, 0, float64(n-1))
	return xs
}
