// Package dataset loads image and series stacks from JSON and builds the
// synthetic data the CLI falls back to.
//
// Formats:
//
//	matrices: [[[row...]...]...]   a stack of 2-D arrays
//	series:   [[v...]...]          a stack of 1-D arrays
//	complex:  [[[re, im]...]...]   one 2-D complex field
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"quickplot/internal/array"
	"quickplot/internal/jsonutil"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var ErrShape = errors.New("dataset: bad shape")

// Open opens path for reading, or stdin for "-".
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return f, nil
}

// LoadMatrices decodes a stack of matrices. Each matrix must be rectangular;
// shapes may differ between matrices.
func LoadMatrices(r io.Reader) ([]array.Matrix, error) {
	raw, err := jsonutil.DecodeArray[[][]float64](r, "dataset: matrices")
	if err != nil {
		return nil, err
	}
	out := make([]array.Matrix, len(raw))
	for i, rows := range raw {
		m, err := array.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: matrix %d: %w", ErrShape, i, err)
		}
		out[i] = m
	}
	return out, nil
}

// LoadSeries decodes a stack of series. Empty series are rejected.
func LoadSeries(r io.Reader) ([]array.Series, error) {
	raw, err := jsonutil.DecodeArray[[]float64](r, "dataset: series")
	if err != nil {
		return nil, err
	}
	out := make([]array.Series, len(raw))
	for i, s := range raw {
		if len(s) == 0 {
			return nil, fmt.Errorf("%w: series %d is empty", ErrShape, i)
		}
		out[i] = s
	}
	return out, nil
}

// LoadComplex decodes a complex field given as [re, im] pairs.
func LoadComplex(r io.Reader) (array.Complex, error) {
	raw, err := jsonutil.DecodeArray[[][]float64](r, "dataset: complex")
	if err != nil {
		return nil, err
	}
	cols := len(raw[0])
	if cols == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrShape)
	}
	out := make(array.Complex, len(raw))
	for i, row := range raw {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShape, i, len(row), cols)
		}
		out[i] = make([]complex128, cols)
		for j, pair := range row {
			if len(pair) != 2 {
				return nil, fmt.Errorf("%w: element (%d,%d) has %d parts, expected [re, im]", ErrShape, i, j, len(pair))
			}
			out[i][j] = complex(pair[0], pair[1])
		}
	}
	return out, nil
}
