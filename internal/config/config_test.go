package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TREASURE_UI", "TREASURE_SEED", "LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
	// t.Setenv restores the original value on cleanup.
	t.Setenv("TRANSCRIPT_DIR", "")
	require.NoError(t, os.Unsetenv("TRANSCRIPT_DIR"))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, UITerminal, cfg.UI)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, ".transcripts", cfg.TranscriptDir)
	assert.False(t, cfg.TelemetryEnabled())
	assert.Error(t, cfg.RequireGeminiKey())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("TREASURE_UI", "console")
	t.Setenv("TREASURE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("TRANSCRIPT_DIR", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, UIConsole, cfg.UI)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.TranscriptDir)
	assert.True(t, cfg.TelemetryEnabled())
	assert.NoError(t, cfg.RequireGeminiKey())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TREASURE_UI", "gui"},
		{"TREASURE_SEED", "lucky"},
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("TREASURE_UI"))
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(".env", []byte("TREASURE_UI=console\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TREASURE_UI") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, UIConsole, cfg.UI)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
