package array

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty is returned when an extent is requested for an element without values.
var ErrEmpty = errors.New("array: empty element")

// ErrRagged is returned for 2-D input whose rows differ in length.
var ErrRagged = errors.New("array: ragged rows")

// Limits is a closed numeric range, used both as colour scale bounds
// (vmin/vmax) and as axis limits.
type Limits struct {
	Min float64
	Max float64
}

// Valid reports whether the range is ordered and free of NaNs.
func (l Limits) Valid() bool {
	return !math.IsNaN(l.Min) && !math.IsNaN(l.Max) && l.Min <= l.Max
}

// Span returns Max - Min.
func (l Limits) Span() float64 {
	return l.Max - l.Min
}

// Contains reports whether o lies entirely inside l.
func (l Limits) Contains(o Limits) bool {
	return o.Min >= l.Min && o.Max <= l.Max
}

// Union returns the smallest range containing both l and o.
func (l Limits) Union(o Limits) Limits {
	return Limits{Min: math.Min(l.Min, o.Min), Max: math.Max(l.Max, o.Max)}
}

// Widen extends l so that it also covers o. It never narrows; widened reports
// whether either bound moved.
func (l Limits) Widen(o Limits) (out Limits, widened bool) {
	if l.Contains(o) {
		return l, false
	}
	out = l
	if o.Min < out.Min {
		out.Min = o.Min
		widened = true
	}
	if o.Max > out.Max {
		out.Max = o.Max
		widened = true
	}
	return out, widened
}

// Normalize maps v into [0,1] relative to the range, clamping outside values.
// A zero-width range maps everything to 0.
func (l Limits) Normalize(v float64) float64 {
	span := l.Span()
	if span <= 0 {
		return 0
	}
	return Clamp01((v - l.Min) / span)
}

func (l Limits) String() string {
	return fmt.Sprintf("[%g, %g]", l.Min, l.Max)
}

// Clamp01 limits x to [0,1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Element is anything that can be placed on a plot and report its value range.
type Element interface {
	Len() int
	Extent() (Limits, error)
}

// Extent returns the union of the extents of all elements.
func Extent[E Element](elems []E) (Limits, error) {
	if len(elems) == 0 {
		return Limits{}, ErrEmpty
	}
	var out Limits
	for i, e := range elems {
		l, err := e.Extent()
		if err != nil {
			return Limits{}, fmt.Errorf("element %d: %w", i, err)
		}
		if i == 0 {
			out = l
			continue
		}
		out = out.Union(l)
	}
	return out, nil
}

// Elements converts a typed slice to a slice of Element.
func Elements[E Element](s []E) []Element {
	out := make([]Element, len(s))
	for i, e := range s {
		out[i] = e
	}
	return out
}
