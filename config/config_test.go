package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/config"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Input)
	assert.Error(t, cfg.Validate(), "input and output are required")
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "run.yaml", `
input: map.txt
output: report.txt
log:
  level: debug
  file: roadmap.log
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "map.txt", cfg.Input)
	assert.Equal(t, "report.txt", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "roadmap.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB, "unset fields keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "run.toml", `
output = "out.txt"

[log]
level = "warn"
max_age_days = 30
`)
	cfg, err := config.Load(path)
	require.NoError(t, err, "input may be supplied later on the command line")
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Log.MaxAgeDays)

	cfg.Input = "in.txt"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "run.json", `{}`))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "bad.yaml", "log: [unclosed"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "level.yaml", "log:\n  level: loud\n"))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Level", verrs[0].Field())

	_, err = config.Load(write(t, "size.toml", "[log]\nmax_size_mb = -1\n"))
	assert.Error(t, err)
}

func TestLogConfig_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := config.LogConfig{Level: in}.SlogLevel()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := config.LogConfig{Level: "loud"}.SlogLevel()
	assert.Error(t, err)
}
