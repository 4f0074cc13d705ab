package colormap

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Space selects the cylindrical, perceptually uniform colour space a cyclic
// map is built in.
type Space int

const (
	HSLuv Space = iota
	HPLuv
)

func (s Space) String() string {
	switch s {
	case HSLuv:
		return "hsluv"
	case HPLuv:
		return "hpluv"
	default:
		return "unknown"
	}
}

// ParseSpace accepts "hsluv" or "hpluv".
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hsluv":
		return HSLuv, nil
	case "hpluv":
		return HPLuv, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSpace, s)
}

// CyclicOptions controls the two hue arms of a cyclic map. Hues are in
// degrees, Saturation in [0,1].
type CyclicOptions struct {
	HueA       float64
	HueB       float64
	Saturation float64
}

// DefaultCyclicOptions sweeps blue up to white and back down through red.
var DefaultCyclicOptions = CyclicOptions{HueA: 250, HueB: 10, Saturation: 1}

// Cyclic builds an n-entry cyclic map in space using DefaultCyclicOptions.
func Cyclic(n int, space Space) (*Map, error) {
	return CyclicWith(n, space, DefaultCyclicOptions)
}

// CyclicWith builds an n-entry cyclic map. The first half ramps lightness up
// along HueA, the second half mirrors it back down along HueB, so both ends
// sit at zero lightness and the first and last entries are identical.
func CyclicWith(n int, space Space, opts CyclicOptions) (*Map, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, n)
	}
	var conv func(h, s, l float64) colorful.Color
	switch space {
	case HSLuv:
		conv = colorful.HSLuv
	case HPLuv:
		conv = colorful.HPLuv
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSpace, int(space))
	}

	colors := sweep(n, conv, opts)
	// Close the loop exactly; conversion drift must not open a seam.
	colors[n-1] = colors[0]

	return &Map{Name: "cyclic-" + space.String(), colors: colors}, nil
}

// sweep samples the two mirrored lightness ramps at n evenly spaced points.
func sweep(n int, conv func(h, s, l float64) colorful.Color, opts CyclicOptions) []colorful.Color {
	sat := clamp(opts.Saturation)
	colors := make([]colorful.Color, n)
	for i := range colors {
		t := float64(i) / float64(n-1)
		hue, light := opts.HueA, 2*t
		if t > 0.5 {
			hue, light = opts.HueB, 2*(1-t)
		}
		colors[i] = conv(hue, sat, clamp(light)).Clamped()
	}
	return colors
}
