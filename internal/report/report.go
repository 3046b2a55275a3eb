// Package report records every keep/discard decision of a run and writes
// them out as YAML when the run ends.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/stemsweep/internal/config"
)

// Action is what happened to one file.
type Action string

const (
	ActionKept      Action = "kept"      // Keeper of a group with discard candidates.
	ActionDeleted   Action = "deleted"   // Candidate removed after confirmation.
	ActionMoved     Action = "moved"     // Candidate relocated after confirmation.
	ActionDeclined  Action = "declined"  // Candidate left in place by the user (or dry run).
	ActionUntouched Action = "untouched" // Member of a group with no keep extension.
)

// Entry is one file decision.
type Entry struct {
	Stem   string `yaml:"stem"`
	Path   string `yaml:"path"`
	Action Action `yaml:"action"`
	Dest   string `yaml:"dest,omitempty"`
}

// Report is the document written by [Recorder.WriteFile].
type Report struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	InputDir    string    `yaml:"input_dir"`
	MoveTo      string    `yaml:"move_to,omitempty"`
	Keep        []string  `yaml:"keep"`
	Recursive   bool      `yaml:"recursive"`
	DryRun      bool      `yaml:"dry_run"`
	Completed   bool      `yaml:"completed"`
	Error       string    `yaml:"error,omitempty"`
	Entries     []Entry   `yaml:"entries"`
}

// Recorder accumulates entries during a run. A nil *Recorder is valid and
// records nothing, so callers need not check whether reporting is enabled.
type Recorder struct {
	report Report
	now    func() time.Time
}

// New returns a Recorder seeded with the run's configuration.
func New(cfg *config.Config) *Recorder {
	keep := make([]string, len(cfg.Keep))
	copy(keep, cfg.Keep)
	return &Recorder{
		report: Report{
			InputDir:  cfg.InputDir,
			MoveTo:    cfg.MoveTo,
			Keep:      keep,
			Recursive: cfg.Recursive,
			DryRun:    cfg.DryRun,
			Entries:   []Entry{},
		},
		now: time.Now,
	}
}

// Record appends one decision. dest is only meaningful for ActionMoved.
func (r *Recorder) Record(stem, path string, action Action, dest string) {
	if r == nil {
		return
	}
	r.report.Entries = append(r.report.Entries, Entry{Stem: stem, Path: path, Action: action, Dest: dest})
}

// Finish marks the run as completed, or as aborted with runErr.
func (r *Recorder) Finish(runErr error) {
	if r == nil {
		return
	}
	r.report.GeneratedAt = r.now().UTC()
	r.report.Completed = runErr == nil
	if runErr != nil {
		r.report.Error = runErr.Error()
	}
}

// Report returns a copy of the accumulated report.
func (r *Recorder) Report() Report {
	if r == nil {
		return Report{}
	}
	out := r.report
	out.Entries = append([]Entry(nil), r.report.Entries...)
	return out
}

// Count returns how many entries have the given action.
func (r *Recorder) Count(action Action) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, e := range r.report.Entries {
		if e.Action == action {
			n++
		}
	}
	return n
}

// WriteFile marshals the report as YAML to path on fs, creating parent
// directories as needed.
func (r *Recorder) WriteFile(fs afero.Fs, path string) error {
	if r == nil {
		return nil
	}
	data, err := yaml.Marshal(r.report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
