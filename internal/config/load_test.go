package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// isolate keeps the user's own config directory out of the test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(context.Background(), New(), "")
	require.NoError(t, err)

	assert.Equal(t, currenttime.DefaultTemplate, cfg.Format)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.Color)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.Symbols)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
format: "%G:%m"
output: yaml
timezone: UTC
color: true
log_file: /tmp/currenttime.log
symbols:
  - "x=%a%a"
  - "T=%G:%m:%s"
`)

	cfg, err := Load(context.Background(), New(), path)
	require.NoError(t, err)

	assert.Equal(t, "%G:%m", cfg.Format)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.True(t, cfg.Color)
	assert.Equal(t, "/tmp/currenttime.log", cfg.LogFile)
	assert.Equal(t, []string{"x=%a%a", "T=%G:%m:%s"}, cfg.Symbols)
}

func TestLoadDefaultPath(t *testing.T) {
	isolate(t)
	def, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(def), 0o750))
	require.NoError(t, os.WriteFile(def, []byte("format: \"%H\"\n"), 0o600))

	cfg, err := Load(context.Background(), New(), "")
	require.NoError(t, err)
	assert.Equal(t, "%H", cfg.Format)
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CURRENTTIME_FORMAT", "%s")
	t.Setenv("CURRENTTIME_TIMEZONE", "Asia/Tokyo")
	t.Setenv("CURRENTTIME_SYMBOLS", "x=%a%a;y=%G")

	path := writeConfig(t, "format: \"%m\"\n")
	cfg, err := Load(context.Background(), New(), path)
	require.NoError(t, err)

	assert.Equal(t, "%s", cfg.Format, "environment beats file")
	assert.Equal(t, "Asia/Tokyo", cfg.Location.String())
	assert.Equal(t, []string{"x=%a%a", "y=%G"}, cfg.Symbols)
}

func TestLoadMissingNamedFile(t *testing.T) {
	isolate(t)
	_, err := Load(context.Background(), New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	isolate(t)

	_, err := Load(context.Background(), New(), writeConfig(t, "timezone: Mars/Olympus_Mons\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidTimezone), "got %v", err)

	_, err = Load(context.Background(), New(), writeConfig(t, "output: xml\n"))
	assert.True(t, errors.Is(err, errors.ErrInvalidOutputFormat), "got %v", err)

	_, err = Load(context.Background(), New(), writeConfig(t, "symbols: [\"x=%x\"]\n"))
	assert.True(t, errors.Is(err, errors.ErrSymbolCycle), "got %v", err)
}

func TestParseTimezone(t *testing.T) {
	for _, name := range []string{"", "Local", "local"} {
		loc, err := ParseTimezone(name)
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	}

	loc, err := ParseTimezone("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC.String(), loc.String())

	_, err = ParseTimezone("Nowhere/Special")
	assert.True(t, errors.Is(err, errors.ErrInvalidTimezone))
}
