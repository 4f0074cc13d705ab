// Package textutil measures and fits text to terminal columns, for axis
// titles and tick labels.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most w columns, ending in Ellipsis when cut.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if Width(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, Ellipsis)
}

// PadLeft right-aligns s in w columns, truncating when it does not fit.
func PadLeft(s string, w int) string {
	if Width(s) >= w {
		return Truncate(s, w)
	}
	return runewidth.FillLeft(s, w)
}

// PadRight left-aligns s in w columns, truncating when it does not fit.
func PadRight(s string, w int) string {
	if Width(s) >= w {
		return Truncate(s, w)
	}
	return runewidth.FillRight(s, w)
}
