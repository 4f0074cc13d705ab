package array

import (
	"fmt"
	"math/cmplx"
)

// Complex is a row-major 2-D array of complex values.
type Complex [][]complex128

// Size returns the number of rows and columns.
func (z Complex) Size() (rows, cols int) {
	if len(z) == 0 {
		return 0, 0
	}
	return len(z), len(z[0])
}

// Validate rejects empty and ragged arrays.
func (z Complex) Validate() error {
	if len(z) == 0 || len(z[0]) == 0 {
		return ErrEmpty
	}
	cols := len(z[0])
	for r, row := range z {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRagged, r, len(row), cols)
		}
	}
	return nil
}

// MaxAbs returns the largest magnitude in z, or 0 for an empty array.
func (z Complex) MaxAbs() float64 {
	var max float64
	for _, row := range z {
		for _, v := range row {
			if a := cmplx.Abs(v); a > max {
				max = a
			}
		}
	}
	return max
}
