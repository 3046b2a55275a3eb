// Command stemsweep keeps one file per base name, chosen by extension
// priority, and offers to delete or move the other variants.
//
// It parses flags, validates configuration and paths, then walks the input
// directory and prompts for every discard candidate.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/backmassage/stemsweep/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand(fmt.Sprintf("%s (%s)", version, commit), afero.NewOsFs())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stemsweep: %v\n", err)
		return 1
	}
	return 0
}
