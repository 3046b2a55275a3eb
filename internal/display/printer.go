package display

import (
	"fmt"
	"io"

	"github.com/backmassage/stemsweep/internal/term"
)

// Printer writes the user-facing lines of a run: one "Keeping" line per
// resolved group and one confirmation per executed action. These are not
// log lines; they carry no timestamp or level and are never written to the
// log file.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Keeping announces the keeper of a group.
func (p *Printer) Keeping(path string) {
	fmt.Fprintf(p.w, "Keeping %s.\n", term.Green.Sprintf("%q", path))
}

// Moved confirms a relocation.
func (p *Printer) Moved(dest string) {
	fmt.Fprintf(p.w, "  %s Moved to %q!\n", term.Yellow.Sprint("*"), dest)
}

// Deleted confirms a removal.
func (p *Printer) Deleted() {
	fmt.Fprintf(p.w, "  %s Deleted!\n", term.Red.Sprint("*"))
}
