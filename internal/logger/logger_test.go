package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithSessionID(context.Background(), "session-123")
	FromContext(ctx).Info("town entered", "terrain", "Ocean")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "treasure-hunter", entry["service"])
	assert.Equal(t, "session-123", entry["session_id"])
	assert.Equal(t, "town entered", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Ocean", entry["terrain"])
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "text"}, &buf)

	slog.Info("hidden")
	assert.Empty(t, buf.String())

	slog.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel(), tt.level)
	}
}

func TestSessionID(t *testing.T) {
	id := NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	_, ok := SessionIDFromContext(context.Background())
	assert.False(t, ok)

	got, ok := SessionIDFromContext(WithSessionID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
