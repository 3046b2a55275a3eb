package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/stemsweep/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	var out bytes.Buffer
	l, err := NewLogger(&cfg, &out, &out)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
	assert.Contains(t, out.String(), "[INFO] test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "stemsweep.log")
	var out, errOut bytes.Buffer
	l, err := NewLogger(&cfg, &out, &errOut)
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLogger_ErrorGoesToErrWriter(t *testing.T) {
	cfg := config.DefaultConfig()
	var out, errOut bytes.Buffer
	l, err := NewLogger(&cfg, &out, &errOut)
	require.NoError(t, err)

	l.Warn("careful")
	l.Error("broken %d", 7)

	assert.Contains(t, out.String(), "careful")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "broken 7")
}

func TestLogger_DebugOnlyWhenVerbose(t *testing.T) {
	cfg := config.DefaultConfig()
	var out bytes.Buffer
	l, err := NewLogger(&cfg, &out, &out)
	require.NoError(t, err)
	l.Debug("hidden")
	assert.Empty(t, out.String())

	cfg.Verbose = true
	l, err = NewLogger(&cfg, &out, &out)
	require.NoError(t, err)
	l.Debug("shown")
	assert.Contains(t, out.String(), "DEBUG")
	assert.Contains(t, out.String(), "shown")
}
