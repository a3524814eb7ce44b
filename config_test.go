package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
format = "console"

[[window]]
title = "main"
w = 800
h = 600
frame_rate = 60.0

[[window]]
title = "tools"
x = 100
y = 50
w = 320
h = 240
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	require.Len(t, cfg.Windows, 2)
	assert.Equal(t, "main", cfg.Windows[0].Title)
	assert.Equal(t, 800, cfg.Windows[0].W)
	assert.InDelta(t, 60.0, cfg.Windows[0].FrameRate, 1e-9)
	assert.Equal(t, 100, cfg.Windows[1].X)
	assert.Zero(t, cfg.Windows[1].FrameRate, "missing rate means uncapped")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsUntitledWindow(t *testing.T) {
	path := writeConfig(t, `
[[window]]
w = 100
h = 100
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "title")
}

func TestLoadConfigRejectsBadSize(t *testing.T) {
	path := writeConfig(t, `
[[window]]
title = "flat"
w = 100
h = 0
`)
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "size")
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LoggingConfig{})
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = NewLogger(LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = NewLogger(LoggingConfig{Level: "shouty"})
	assert.Error(t, err)

	_, err = NewLogger(LoggingConfig{Format: "xml"})
	assert.Error(t, err)
}
