// Package cli builds the stemsweep cobra command: flag wiring, path checks,
// and assembly of the dedup run from its collaborators.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/backmassage/stemsweep/internal/config"
	"github.com/backmassage/stemsweep/internal/dedup"
	"github.com/backmassage/stemsweep/internal/display"
	"github.com/backmassage/stemsweep/internal/logging"
	"github.com/backmassage/stemsweep/internal/prompt"
	"github.com/backmassage/stemsweep/internal/report"
	"github.com/backmassage/stemsweep/internal/term"
)

// NewRootCommand creates the root command. fs is the filesystem the run
// operates on; main passes afero.NewOsFs().
func NewRootCommand(version string, fs afero.Fs) *cobra.Command {
	cfg := config.DefaultConfig()
	var binding *config.Binding

	cmd := &cobra.Command{
		Use:   "stemsweep [flags] <input_dir>",
		Short: "Keep one file per base name by extension priority",
		Long: `stemsweep finds files in a directory that share a base name but differ in
extension (photo.jpg, photo.raw, photo.xmp). For each such group it keeps the
file whose extension comes first in the --keep list and asks, file by file,
whether to delete the others or move them under --move.

Groups with no file matching any --keep extension are left alone. Every
question defaults to no.`,
		Example: `  stemsweep -k raw -k jpg ~/Pictures/2024
  stemsweep -r -k flac -k mp3 -m ~/discard ~/Music`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := binding.Apply(args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, &cfg, fs, version)
		},
	}
	cmd.Flags().SortFlags = false
	binding = config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().BoolP("version", "V", false, "Print version and exit")

	return cmd
}

// run checks paths, wires the collaborators, and executes one dedup pass.
func run(cmd *cobra.Command, cfg *config.Config, fs afero.Fs, version string) error {
	out := cmd.OutOrStdout()

	log, err := logging.NewLogger(cfg, out, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Close()

	if err := checkPaths(fs, cfg); err != nil {
		return err
	}

	if !cfg.NoBanner {
		display.PrintBanner(out)
	}
	log.Info("=== stemsweep v%s ===", version)
	log.Debug("Color output: %t", term.Enabled())

	var rec *report.Recorder
	if cfg.ReportFile != "" {
		rec = report.New(cfg)
	}

	d := dedup.New(cfg, dedup.Deps{
		FS:      fs,
		Confirm: confirmer(cfg, cmd.InOrStdin(), out),
		Out:     display.NewPrinter(out),
		Log:     log,
		Report:  rec,
	})
	_, runErr := d.Run()

	if rec != nil {
		rec.Finish(runErr)
		if err := rec.WriteFile(fs, cfg.ReportFile); err != nil {
			log.Error("%v", err)
			if runErr == nil {
				runErr = err
			}
		} else {
			log.Info("Report: %s (%d kept, %d deleted, %d moved, %d declined)", cfg.ReportFile,
				rec.Count(report.ActionKept), rec.Count(report.ActionDeleted),
				rec.Count(report.ActionMoved), rec.Count(report.ActionDeclined))
		}
	}
	return runErr
}

// confirmer picks the console prompt, or the auto-declining one for dry runs.
func confirmer(cfg *config.Config, in io.Reader, out io.Writer) prompt.Confirmer {
	if cfg.DryRun {
		return prompt.DryRun(out)
	}
	return prompt.NewConsole(in, out)
}

// checkPaths requires the input to be a directory, resolves the move
// destination to an absolute path, and rejects a destination inside the
// input tree for recursive runs.
func checkPaths(fs afero.Fs, cfg *config.Config) error {
	fi, err := fs.Stat(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("input not found: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("input %s is not a directory", cfg.InputDir)
	}
	if cfg.MoveTo == "" {
		return nil
	}

	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	moveAbs, err := absPath(cfg.MoveTo)
	if err != nil {
		return fmt.Errorf("resolve move path: %w", err)
	}
	if err := cfg.ValidatePaths(inputAbs, moveAbs); err != nil {
		return fmt.Errorf("%w: %s is inside %s", err, cfg.MoveTo, cfg.InputDir)
	}
	cfg.MoveTo = moveAbs
	return nil
}

// absPath returns the absolute path with symlinks resolved as far as the
// path exists. A destination that does not exist yet is resolved through
// its nearest existing ancestor.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}
	base, err := absPath(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, filepath.Base(abs)), nil
}
