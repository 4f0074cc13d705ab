package navigate

import (
	"errors"
	"fmt"

	"quickplot/internal/array"
	"quickplot/internal/colormap"
)

var (
	ErrEmptyStack     = errors.New("navigate: empty stack")
	ErrLengthMismatch = errors.New("navigate: auxiliary list length does not match the stack")
	ErrLimits         = errors.New("navigate: invalid axis limits")
	ErrNoBackend      = errors.New("navigate: nil backend")
)

// Config holds the optional settings of a navigator. The zero value is
// valid: generated "index N" titles, automatic limits, the hot colormap and
// a 7x7 inch figure.
type Config struct {
	// Names gives each element a title. Empty means "index N" titles;
	// otherwise it must have one entry per element.
	Names []string
	// X gives per-element x coordinates for plot stacks. Nil means 0..len-1.
	X [][]float64
	// XLim and YLim fix the plot axes. Nil means computed from the stack.
	XLim *array.Limits
	YLim *array.Limits
	// Colormap for image stacks. Default: colormap.Hot().
	Colormap *colormap.Map
	Width    float64
	Height   float64
	// Keys overrides the navigation bindings. Default: Keys.
	Keys *KeyMap
}

// Validate checks cfg against a stack of n elements whose lengths are given
// by lens (nil for image stacks, where X does not apply).
func (c Config) Validate(n int, lens []int) error {
	if n <= 0 {
		return ErrEmptyStack
	}
	if len(c.Names) != 0 && len(c.Names) != n {
		return fmt.Errorf("%w: %d names for %d elements", ErrLengthMismatch, len(c.Names), n)
	}
	if c.X != nil {
		if lens == nil {
			return fmt.Errorf("%w: x coordinates only apply to plot stacks", ErrLengthMismatch)
		}
		if len(c.X) != n {
			return fmt.Errorf("%w: %d x coordinate sets for %d elements", ErrLengthMismatch, len(c.X), n)
		}
		for i, x := range c.X {
			if len(x) != lens[i] {
				return fmt.Errorf("%w: element %d has %d samples and %d x values", ErrLengthMismatch, i, lens[i], len(x))
			}
		}
	}
	for name, l := range map[string]*array.Limits{"x": c.XLim, "y": c.YLim} {
		if l != nil && !l.Valid() {
			return fmt.Errorf("%w: %s limits %v", ErrLimits, name, *l)
		}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Colormap == nil {
		c.Colormap = colormap.Hot()
	}
	if c.Width <= 0 {
		c.Width = 7
	}
	if c.Height <= 0 {
		c.Height = 7
	}
	if c.Keys == nil {
		k := Keys
		c.Keys = &k
	}
	return c
}

// title returns the display title of element i.
func (c Config) title(i int) string {
	if len(c.Names) > i {
		return c.Names[i]
	}
	return fmt.Sprintf("index %d", i)
}
