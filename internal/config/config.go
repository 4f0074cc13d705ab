// Package config loads quickplot.toml, the per-project defaults file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"quickplot/internal/colormap"
	"quickplot/internal/phase"
	"quickplot/internal/plotfile"
)

// FileName is the name searched for by Find.
const FileName = "quickplot.toml"

// Backend names.
const (
	BackendTerminal = "term"
	BackendFile     = "file"
)

var ErrInvalid = errors.New("config: invalid")

// Config holds the defaults shared by every command. Flags override it.
type Config struct {
	// Colormap for images: hot, gray, cyclic or cyclic-hpluv.
	Colormap string `toml:"colormap"`
	// Theme for complex fields: dark or light.
	Theme string `toml:"theme"`
	// Backend is "term" (interactive) or "file".
	Backend string `toml:"backend"`
	// Format of files written by the file backend.
	Format string `toml:"format"`
	// OutputDir receives saved figures. Empty means QUICKPLOT_OUTPUT_DIR or
	// ~/.quickplot/figures.
	OutputDir string `toml:"output_dir"`
	// Width and Height of figures, in inches.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	Cyclic Cyclic `toml:"cyclic"`
}

// Cyclic configures the cyclic colormap command.
type Cyclic struct {
	Space      string  `toml:"space"`
	Size       int     `toml:"size"`
	HueA       float64 `toml:"hue_a"`
	HueB       float64 `toml:"hue_b"`
	Saturation float64 `toml:"saturation"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Colormap: "hot",
		Theme:    string(phase.Dark),
		Backend:  BackendTerminal,
		Format:   plotfile.DefaultFormat,
		Width:    7,
		Height:   7,
		Cyclic: Cyclic{
			Space:      colormap.HSLuv.String(),
			Size:       colormap.DefaultSize,
			HueA:       colormap.DefaultCyclicOptions.HueA,
			HueB:       colormap.DefaultCyclicOptions.HueB,
			Saturation: colormap.DefaultCyclicOptions.Saturation,
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Find searches for quickplot.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. Returns the path and the
// parsed config, or ("", nil, nil) if not found.
func Find(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return "", nil, err
			}
			return path, cfg, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

// Validate checks every field eagerly.
func (c Config) Validate() error {
	var errs []error
	if _, err := colormap.Named(c.Colormap); err != nil {
		errs = append(errs, err)
	}
	if _, err := phase.ParseTheme(c.Theme); err != nil {
		errs = append(errs, err)
	}
	if c.Backend != BackendTerminal && c.Backend != BackendFile {
		errs = append(errs, fmt.Errorf("%w: backend %q (want %s or %s)", ErrInvalid, c.Backend, BackendTerminal, BackendFile))
	}
	if _, err := plotfile.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("%w: size %gx%g", ErrInvalid, c.Width, c.Height))
	}
	if _, err := colormap.ParseSpace(c.Cyclic.Space); err != nil {
		errs = append(errs, err)
	}
	if c.Cyclic.Size < 2 {
		errs = append(errs, fmt.Errorf("%w: %d", colormap.ErrResolution, c.Cyclic.Size))
	}
	if c.Cyclic.Saturation < 0 || c.Cyclic.Saturation > 1 {
		errs = append(errs, fmt.Errorf("%w: cyclic saturation %g outside [0,1]", ErrInvalid, c.Cyclic.Saturation))
	}
	return errors.Join(errs...)
}

// CyclicOptions returns the hue settings for colormap.CyclicWith.
func (c Config) CyclicOptions() colormap.CyclicOptions {
	return colormap.CyclicOptions{HueA: c.Cyclic.HueA, HueB: c.Cyclic.HueB, Saturation: c.Cyclic.Saturation}
}
