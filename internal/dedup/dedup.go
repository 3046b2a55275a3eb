package dedup

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/backmassage/stemsweep/internal/config"
	"github.com/backmassage/stemsweep/internal/display"
	"github.com/backmassage/stemsweep/internal/logging"
	"github.com/backmassage/stemsweep/internal/prompt"
	"github.com/backmassage/stemsweep/internal/report"
)

// Deps are the collaborators a Deduplicator works through.
type Deps struct {
	FS      afero.Fs
	Confirm prompt.Confirmer
	Out     *display.Printer
	Log     *logging.Logger
	Report  *report.Recorder // Optional.
}

// Deduplicator walks a directory tree and resolves stem groups. It is
// single-use: create one per run.
type Deduplicator struct {
	cfg     *config.Config
	fs      afero.Fs
	confirm prompt.Confirmer
	out     *display.Printer
	log     *logging.Logger
	report  *report.Recorder
	stats   RunStats
}

// New returns a Deduplicator for cfg. cfg must already be validated.
func New(cfg *config.Config, deps Deps) *Deduplicator {
	return &Deduplicator{
		cfg:     cfg,
		fs:      deps.FS,
		confirm: deps.Confirm,
		out:     deps.Out,
		log:     deps.Log,
		report:  deps.Report,
	}
}

// Run processes cfg.InputDir (recursively if configured), logs a summary,
// and returns the stats. The first error stops the run; the stats still
// reflect everything done up to that point.
func (d *Deduplicator) Run() (RunStats, error) {
	d.logHeader()
	err := d.visit(d.cfg.InputDir, d.cfg.MoveTo)
	d.logSummary()
	return d.stats, err
}

// visit handles one directory: subdirectories first, depth-first in listing
// order, then this directory's groups. moveTo is the destination mirroring
// dir, or empty when discards are deleted.
func (d *Deduplicator) visit(dir, moveTo string) error {
	groups, subdirs, err := Scan(d.fs, dir, d.cfg.Recursive)
	if err != nil {
		return err
	}
	d.stats.Directories++
	d.log.Debug("Scanned %s: %d stems, %d subdirectories", dir, len(groups), len(subdirs))

	for _, name := range subdirs {
		subMove := ""
		if moveTo != "" {
			subMove = filepath.Join(moveTo, name)
		}
		if err := d.visit(filepath.Join(dir, name), subMove); err != nil {
			return err
		}
	}

	for _, g := range groups {
		d.stats.Groups++
		keeper, ok := SelectKeeper(g, d.cfg.Keep)
		if !ok {
			if len(g.Entries) > 1 {
				d.stats.Unmatched++
				d.log.Debug("No keep extension for %q in %s, leaving %d files alone", g.Stem, dir, len(g.Entries))
				for _, e := range g.Entries {
					d.report.Record(g.Stem, e.Path, report.ActionUntouched, "")
				}
			}
			continue
		}
		if err := d.ResolveGroup(g, keeper, moveTo); err != nil {
			return err
		}
	}
	return nil
}

// ResolveGroup offers every member of g except keeper for deletion, or for a
// move into moveTo when it is non-empty. Nothing is printed or asked when
// keeper is the only member. The destination directory is created on the
// first confirmed move and at most once per group.
func (d *Deduplicator) ResolveGroup(g FileGroup, keeper Entry, moveTo string) error {
	discards := Discards(g, keeper)
	if len(discards) == 0 {
		return nil
	}

	d.stats.Resolved++
	d.out.Keeping(keeper.Path)
	d.report.Record(g.Stem, keeper.Path, report.ActionKept, "")

	created := false
	for _, e := range discards {
		d.stats.Candidates++
		if moveTo != "" {
			moved, err := d.offerMove(g.Stem, e, moveTo, &created)
			if err != nil {
				return err
			}
			if !moved {
				d.decline(g.Stem, e)
			}
			continue
		}
		deleted, err := d.offerDelete(g.Stem, e)
		if err != nil {
			return err
		}
		if !deleted {
			d.decline(g.Stem, e)
		}
	}
	return nil
}

func (d *Deduplicator) offerMove(stem string, e Entry, moveTo string, created *bool) (bool, error) {
	ok, err := d.confirm.Confirm(fmt.Sprintf("  Move %q?", e.Path), false)
	if err != nil {
		return false, fmt.Errorf("confirm move of %s: %w", e.Path, err)
	}
	if !ok {
		return false, nil
	}

	if !*created {
		if err := d.fs.MkdirAll(moveTo, 0o755); err != nil {
			return false, fmt.Errorf("create destination %s: %w", moveTo, err)
		}
		*created = true
	}

	size, err := d.size(e.Path)
	if err != nil {
		return false, err
	}
	dest := filepath.Join(moveTo, filepath.Base(e.Path))
	if err := d.fs.Rename(e.Path, dest); err != nil {
		return false, fmt.Errorf("move %s to %s: %w", e.Path, dest, err)
	}

	d.stats.Moved++
	d.stats.BytesMoved += size
	d.out.Moved(dest)
	d.report.Record(stem, e.Path, report.ActionMoved, dest)
	return true, nil
}

func (d *Deduplicator) offerDelete(stem string, e Entry) (bool, error) {
	ok, err := d.confirm.Confirm(fmt.Sprintf("  Delete %q?", e.Path), false)
	if err != nil {
		return false, fmt.Errorf("confirm deletion of %s: %w", e.Path, err)
	}
	if !ok {
		return false, nil
	}

	size, err := d.size(e.Path)
	if err != nil {
		return false, err
	}
	if err := d.fs.Remove(e.Path); err != nil {
		return false, fmt.Errorf("delete %s: %w", e.Path, err)
	}

	d.stats.Deleted++
	d.stats.BytesDeleted += size
	d.out.Deleted()
	d.report.Record(stem, e.Path, report.ActionDeleted, "")
	return true, nil
}

func (d *Deduplicator) decline(stem string, e Entry) {
	d.stats.Declined++
	d.report.Record(stem, e.Path, report.ActionDeclined, "")
}

func (d *Deduplicator) size(path string) (int64, error) {
	fi, err := d.fs.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return fi.Size(), nil
}

// --- Logging helpers ---

func (d *Deduplicator) logHeader() {
	d.log.Info("In:   %s", d.cfg.InputDir)
	d.log.Info("Keep: %s", strings.Join(d.cfg.Keep, " > "))
	if d.cfg.MoveTo != "" {
		d.log.Info("Move: %s", d.cfg.MoveTo)
	} else {
		d.log.Info("Mode: delete")
	}
	if d.cfg.Recursive {
		d.log.Info("Recursive: subdirectories are processed independently")
	}
	if d.cfg.DryRun {
		d.log.Warn("DRY RUN: nothing will be deleted or moved")
	}
}

func (d *Deduplicator) logSummary() {
	s := d.stats
	d.log.Info("=== Summary ===")
	d.log.Info("Directories: %d, stems: %d, resolved groups: %d", s.Directories, s.Groups, s.Resolved)
	if s.Unmatched > 0 {
		d.log.Warn("%s without any keep extension left alone", display.Plural(s.Unmatched, "group"))
	}
	if s.Deleted > 0 {
		d.log.Success("Deleted %s (%s)", display.Plural(s.Deleted, "file"), display.FormatBytes(s.BytesDeleted))
	}
	if s.Moved > 0 {
		d.log.Success("Moved %s (%s)", display.Plural(s.Moved, "file"), display.FormatBytes(s.BytesMoved))
	}
	if s.Declined > 0 {
		d.log.Info("Declined %s", display.Plural(s.Declined, "file"))
	}
	if s.Acted() > 0 {
		d.log.Info("%s freed from %s", display.FormatBytes(s.BytesFreed()), d.cfg.InputDir)
	}
	if s.Candidates == 0 {
		d.log.Info("Nothing to do")
	}
}
