package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// OutputDirEnv overrides the default output directory.
	OutputDirEnv = "QUICKPLOT_OUTPUT_DIR"
	// DefaultOutputBase is the default directory under the user's home.
	DefaultOutputBase = ".quickplot/figures"
)

// Store hands out file paths for saved figures.
// Layout: <base>/<name>.<ext>
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir. An empty dir falls back to
// QUICKPLOT_OUTPUT_DIR and then to ~/.quickplot/figures.
func NewStore(dir string) (*Store, error) {
	base := dir
	if base == "" {
		base = os.Getenv(OutputDirEnv)
	}
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultOutputBase)
	}
	return &Store{baseDir: base}, nil
}

// BaseDir returns the directory files are written to.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the path for a figure called name with extension ext, creating
// the base directory if needed.
func (s *Store) Path(name, ext string) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("artifact: create %s: %w", s.baseDir, err)
	}
	ext = strings.TrimPrefix(ext, ".")
	return filepath.Join(s.baseDir, Normalize(name)+"."+ext), nil
}

// Normalize turns a title into a file name: lowercase, spaces to hyphens,
// path separators dropped.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return -1
		}
		return r
	}, n)
	if n == "" {
		return "figure"
	}
	return n
}
