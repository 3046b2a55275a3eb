package term

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/backmassage/stemsweep/internal/config"
)

func TestConfigure(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.Contains(t, Green.Sprint("ok"), "\x1b[")

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Equal(t, "ok", Green.Sprint("ok"))
}

func TestConfigure_AutoHonorsNoColor(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	assert.False(t, Enabled())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))

	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, IsTerminal(f), "a regular file is not a TTY")
}
