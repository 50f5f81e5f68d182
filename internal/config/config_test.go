package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reportcard/internal/chart"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REPORTCARD_CONFIG", "REPORTCARD_LOG_LEVEL", "REPORTCARD_LOG_FILE", "REPORTCARD_QUARTER", "REPORTCARD_CHART"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `
[ui]
default_quarter = 2
default_chart = "cq"
collapsed_subjects = 6

[log]
level = "debug"
file = "/tmp/rc.log"
max_backups = 1
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.UI.DefaultQuarter)
	assert.Equal(t, chart.CQ, cfg.Chart())
	assert.Equal(t, 6, cfg.UI.CollapsedSubjects)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/rc.log", cfg.Log.File)
	assert.Equal(t, 1, cfg.Log.MaxBackups)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().Log.MaxSizeMB, cfg.Log.MaxSizeMB)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "[ui]\ndefault_quarter = 2\n")
	t.Setenv("REPORTCARD_QUARTER", "3")
	t.Setenv("REPORTCARD_CHART", "mcq")
	t.Setenv("REPORTCARD_LOG_LEVEL", "warn")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.UI.DefaultQuarter)
	assert.Equal(t, chart.MCQ, cfg.Chart())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "[ui]\ndefault_chart = \"cq\"\n")
	t.Setenv("REPORTCARD_CONFIG", p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "cq", cfg.UI.DefaultChart)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "quarter out of range", body: "[ui]\ndefault_quarter = 4\n"},
		{name: "unknown chart", body: "[ui]\ndefault_chart = \"grades\"\n"},
		{name: "zero collapsed", body: "[ui]\ncollapsed_subjects = 0\n"},
		{name: "bad level", body: "[log]\nlevel = \"loud\"\n"},
		{name: "bad env quarter", env: map[string]string{"REPORTCARD_QUARTER": "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "[ui\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultPath_XDG(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "reportcard", "config.toml"), DefaultPath())
}
