package config

// This file implements CLI flag registration and environment fallback.
// Flags are grouped into selection, behavior, display, and utility.
// Negated flags (e.g. --no-color) and STEMSWEEP_* variables are applied after
// parsing so Config defaults hold unless the user sets something.

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variables that back unset flags,
// e.g. STEMSWEEP_KEEP=raw,jpg.
const EnvPrefix = "STEMSWEEP"

// Binding ties a flag set to a Config. It is returned by [BindFlags] and
// finished with [Binding.Apply] once the flag set has been parsed.
type Binding struct {
	fs      *pflag.FlagSet
	cfg     *Config
	env     *viper.Viper
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every stemsweep flag on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Binding {
	b := &Binding{fs: fs, cfg: cfg, env: newEnv()}

	defineSelectionFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &b.negated)

	return b
}

func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// defineSelectionFlags registers -k/--keep, -r/--recursive, -m/--move.
func defineSelectionFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringArrayVarP(&cfg.Keep, "keep", "k", nil, "Extension to keep, highest priority first (repeatable, required)")
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", cfg.Recursive, "Descend into subdirectories")
	fs.StringVarP(&cfg.MoveTo, "move", "m", "", "Move discarded files under this directory instead of deleting them")
}

// defineBehaviorFlags registers -n/--dry-run.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Show what would be kept and offered, without prompting or touching files")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log, --report, --no-banner.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored output")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.StringVar(&cfg.ReportFile, "report", "", "Write a YAML report of every decision to this path")
	fs.BoolVar(&cfg.NoBanner, "no-banner", false, "Do not print the banner")
}

// Apply finishes configuration after the flag set has been parsed: it fills
// unset flags from STEMSWEEP_* variables, applies negated flags, and takes
// the input directory from the positional args.
func (b *Binding) Apply(args []string) error {
	b.applyEnv()
	applyNegatedFlags(b.cfg, &b.negated)
	return parsePositionalArgs(args, b.cfg)
}

// applyEnv copies environment values into cfg for every flag the user did
// not pass explicitly. Flags always win over the environment.
func (b *Binding) applyEnv() {
	if b.envSet("keep") {
		b.cfg.Keep = splitList(b.env.GetString("keep"))
	}
	if b.envSet("recursive") {
		b.cfg.Recursive = b.env.GetBool("recursive")
	}
	if b.envSet("move") {
		b.cfg.MoveTo = b.env.GetString("move")
	}
	if b.envSet("dry-run") {
		b.cfg.DryRun = b.env.GetBool("dry-run")
	}
	if b.envSet("verbose") {
		b.cfg.Verbose = b.env.GetBool("verbose")
	}
	if b.envSet("log") {
		b.cfg.LogFile = b.env.GetString("log")
	}
	if b.envSet("report") {
		b.cfg.ReportFile = b.env.GetString("report")
	}
}

// envSet reports whether name should be taken from the environment: the
// flag was not given on the command line and STEMSWEEP_<NAME> is set.
func (b *Binding) envSet(name string) bool {
	return !b.fs.Changed(name) && b.env.IsSet(name)
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir from the single positional arg.
func parsePositionalArgs(args []string, cfg *Config) error {
	if len(args) != 1 {
		return ErrNoInput
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	if cfg.MoveTo != "" {
		cfg.MoveTo = NormalizeDirArg(cfg.MoveTo)
	}
	return nil
}

// splitList splits a comma-separated environment value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
