package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/godyy/gcountdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countdown.yaml")
	content := "tick_interval: 250ms\ndays: 2\nhours: 3\nminutes: 4\nseconds: 5\nmilliseconds: 600\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fc, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, fc.TickInterval)
	assert.Equal(t, uint64(2), fc.Days)

	hours, minutes, seconds, milliseconds, err := fc.units()
	require.NoError(t, err)
	assert.Equal(t, uint8(3), hours)
	assert.Equal(t, uint8(4), minutes)
	assert.Equal(t, uint8(5), seconds)
	assert.Equal(t, uint16(600), milliseconds)
}

func TestLoadFileConfigErrors(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_interval: [\n"), 0o600))
	_, err = loadFileConfig(path)
	assert.Error(t, err)
}

func TestFileConfigUnitsOutOfRange(t *testing.T) {
	// 300 截断为 uint8 后为 44, 必须在截断前拒绝.
	fc := &fileConfig{Hours: 300}
	_, _, _, _, err := fc.units()
	assert.ErrorIs(t, err, gcountdown.ErrInvalidArgument)

	fc = &fileConfig{Milliseconds: 70000}
	_, _, _, _, err = fc.units()
	assert.ErrorIs(t, err, gcountdown.ErrInvalidArgument)
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"debug", "INFO", "warn", "error"} {
		_, err := parseLevel(s)
		assert.NoError(t, err, s)
	}
	_, err := parseLevel("verbose")
	assert.Error(t, err)
}
