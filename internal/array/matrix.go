package array

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a row-major 2-D array (an image). Rows created through NewMatrix
// or FromRows share one contiguous backing slice.
type Matrix [][]float64

// NewMatrix returns a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	storage := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for r := range m {
		m[r] = storage[r*cols : (r+1)*cols]
	}
	return m
}

// FromRows copies rows into a new matrix. Ragged input is rejected.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRagged, r, len(row), cols)
		}
		copy(m[r], row)
	}
	return m, nil
}

// Size returns the number of rows and columns.
func (m Matrix) Size() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Len returns the total number of values.
func (m Matrix) Len() int {
	rows, cols := m.Size()
	return rows * cols
}

// At returns the value at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m[r][c]
}

// Extent returns the minimum and maximum value.
func (m Matrix) Extent() (Limits, error) {
	if m.Len() == 0 {
		return Limits{}, ErrEmpty
	}
	l := Limits{Min: floats.Min(m[0]), Max: floats.Max(m[0])}
	for _, row := range m[1:] {
		if len(row) == 0 {
			continue
		}
		l = l.Union(Limits{Min: floats.Min(row), Max: floats.Max(row)})
	}
	return l, nil
}
