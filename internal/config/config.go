// Package config holds runtime configuration: defaults, CLI flag
// registration, environment fallback, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Validation errors returned by [Config.Validate] and [Config.ValidatePaths].
var (
	ErrNoInput         = errors.New("need exactly one input_dir")
	ErrNoKeep          = errors.New("at least one --keep extension is required")
	ErrMoveInsideInput = errors.New("move destination must not be inside the input directory when recursing")
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then filled in by the flags registered with [BindFlags].
type Config struct {
	// Paths.
	InputDir string
	MoveTo   string // Empty: discards are deleted instead of moved.

	// Selection policy.
	Keep      []string // Priority order, highest first. Compared case-insensitively.
	Recursive bool

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ReportFile string    // Optional YAML report path.
	NoBanner   bool
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Recursive: false,
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// A path made only of slashes is the filesystem root and becomes "/".
func NormalizeDirArg(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// NormalizeExt trims whitespace and a single leading dot, so "-k .JPG" and
// "-k JPG" name the same extension. Case is preserved; comparison is
// case-insensitive at match time.
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	return strings.TrimPrefix(ext, ".")
}

// Validate checks the color mode, normalizes the keep list, and requires an
// input directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if len(c.Keep) == 0 {
		return ErrNoKeep
	}
	keep := make([]string, 0, len(c.Keep))
	for _, raw := range c.Keep {
		ext := NormalizeExt(raw)
		if ext == "" {
			return fmt.Errorf("invalid keep extension %q", raw)
		}
		keep = append(keep, ext)
	}
	c.Keep = keep

	if c.InputDir == "" {
		return ErrNoInput
	}
	return nil
}

// ValidatePaths ensures that, for recursive runs, the resolved move
// destination is not inside (or equal to) the resolved input directory.
// Otherwise the walk could rediscover files it has just moved. Both
// arguments must be absolute, symlink-resolved paths; moveAbs may be empty.
func (c *Config) ValidatePaths(inputAbs, moveAbs string) error {
	if moveAbs == "" || !c.Recursive {
		return nil
	}
	sep := string(filepath.Separator)
	prefix := strings.TrimSuffix(inputAbs, sep) + sep
	if moveAbs == inputAbs || strings.HasPrefix(moveAbs+sep, prefix) {
		return ErrMoveInsideInput
	}
	return nil
}
