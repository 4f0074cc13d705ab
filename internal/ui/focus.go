package ui

import "quickplot/internal/navigate"

// FocusRing tracks which of N figures is on screen and rotates through them.
type FocusRing struct {
	Current  int
	N        int
	OnChange func(from, to int)
}

// Next moves focus to the following figure, wrapping at the end.
func (f *FocusRing) Next() int { return f.move(1) }

// Prev moves focus to the preceding figure, wrapping at the start.
func (f *FocusRing) Prev() int { return f.move(-1) }

// SetFocus focuses figure i. Returns false if i is out of range.
func (f *FocusRing) SetFocus(i int) bool {
	if i < 0 || i >= f.N {
		return false
	}
	f.set(i)
	return true
}

func (f *FocusRing) move(delta int) int {
	if f.N == 0 {
		return 0
	}
	f.set(navigate.Mod(f.Current+delta, f.N))
	return f.Current
}

func (f *FocusRing) set(i int) {
	from := f.Current
	f.Current = i
	if f.OnChange != nil && from != i {
		f.OnChange(from, i)
	}
}
