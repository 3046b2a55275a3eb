package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/stemsweep/internal/config"
	"github.com/backmassage/stemsweep/internal/report"
)

// execute runs the root command against the real filesystem with input as
// stdin and returns combined stdout/stderr.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	cmd := NewRootCommand("test", afero.NewOsFs())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--no-color", "--no-banner"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRoot_DeleteWithConfirmation(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "a.raw", "a.xmp", "b.png")

	out, err := execute(t, "y\nn\n", "-k", "raw", "-k", "jpg", dir)
	require.NoError(t, err)

	assert.Contains(t, out, `Keeping "`+filepath.Join(dir, "a.raw")+`".`)
	assert.Contains(t, out, "* Deleted!")
	assert.False(t, fileExists(filepath.Join(dir, "a.jpg")))
	assert.True(t, fileExists(filepath.Join(dir, "a.xmp")))
	assert.True(t, fileExists(filepath.Join(dir, "b.png")))
}

func TestRoot_RecursiveMove(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "M")
	writeFiles(t, root, "sub/x.jpg", "sub/x.tmp")

	_, err := execute(t, "y\n", "-r", "-k", "jpg", "-m", dest, root)
	require.NoError(t, err)

	assert.True(t, fileExists(filepath.Join(dest, "sub", "x.tmp")))
	assert.False(t, fileExists(filepath.Join(root, "sub", "x.tmp")))
	assert.True(t, fileExists(filepath.Join(root, "sub", "x.jpg")))
}

func TestRoot_ClosedStdinFails(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "a.raw")

	_, err := execute(t, "", "-k", "raw", dir)
	require.Error(t, err)
	assert.True(t, fileExists(filepath.Join(dir, "a.jpg")))
}

func TestRoot_NothingToDoSucceeds(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.png", "b.gif", "notes")

	out, err := execute(t, "", "-k", "jpg", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "Keeping")
	assert.Contains(t, out, "Nothing to do")
}

func TestRoot_Validation(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "file.txt")

	_, err := execute(t, "", dir)
	assert.ErrorIs(t, err, config.ErrNoKeep)

	_, err = execute(t, "", "-k", "jpg")
	assert.ErrorIs(t, err, config.ErrNoInput)

	_, err = execute(t, "", "-k", "jpg", filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "input not found")

	_, err = execute(t, "", "-k", "jpg", filepath.Join(dir, "file.txt"))
	assert.ErrorContains(t, err, "not a directory")
}

func TestRoot_MoveInsideInputRejectedWhenRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "a.raw")

	_, err := execute(t, "", "-r", "-k", "raw", "-m", filepath.Join(dir, "discard"), dir)
	assert.ErrorIs(t, err, config.ErrMoveInsideInput)

	// Without recursion the destination is never rescanned.
	_, err = execute(t, "n\n", "-k", "raw", "-m", filepath.Join(dir, "discard"), dir)
	assert.NoError(t, err)
}

func TestRoot_RootInputRejectsMoveWhenRecursive(t *testing.T) {
	_, err := execute(t, "", "-r", "-k", "jpg", "-m", t.TempDir(), "/")
	assert.ErrorIs(t, err, config.ErrMoveInsideInput)
}

func TestRoot_DryRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "a.raw")
	reportPath := filepath.Join(t.TempDir(), "reports", "run.yaml")

	out, err := execute(t, "", "-n", "-v", "-k", "raw", "--report", reportPath, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[dry run: skipped]")
	assert.Contains(t, out, "Color output: false")
	assert.Contains(t, out, "(1 kept, 0 deleted, 0 moved, 1 declined)")
	assert.True(t, fileExists(filepath.Join(dir, "a.jpg")))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.True(t, rep.Completed)
	assert.True(t, rep.DryRun)
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, report.ActionKept, rep.Entries[0].Action)
	assert.Equal(t, report.ActionDeclined, rep.Entries[1].Action)
}

func TestRoot_ReportWrittenOnAbort(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "a.raw")
	reportPath := filepath.Join(t.TempDir(), "run.yaml")

	_, err := execute(t, "", "-k", "raw", "--report", reportPath, dir)
	require.Error(t, err)

	data, readErr := os.ReadFile(reportPath)
	require.NoError(t, readErr)
	var rep report.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.False(t, rep.Completed)
	assert.NotEmpty(t, rep.Error)
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "", "-V")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestAbsPath_NonexistentTail(t *testing.T) {
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	got, err := absPath(filepath.Join(dir, "not", "yet"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(resolved, "not", "yet"), got)
}
