package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	id := GenerateRequestID()
	_, err := uuid.Parse(id)
	require.NoError(t, err, "request ids are UUIDs")

	ctx := WithRequestID(context.Background(), id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestFromContextWithoutRequestID(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestConfigLogLevel(t *testing.T) {
	cases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		cfg := Config{Level: tc.level}
		assert.Equal(t, tc.want, cfg.LogLevel(), "level %q", tc.level)
	}
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: "json"}.IsJSON())
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())
}

func TestConfigBaseAttributes(t *testing.T) {
	cfg := NewConfig("info", "json", "cheatkeeper", "1.2.3", "prod", false)

	attrs := cfg.BaseAttributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, slog.String(AttrKeyService, "cheatkeeper"), attrs[0])
	assert.Equal(t, slog.String(AttrKeyVersion, "1.2.3"), attrs[1])
	assert.Equal(t, slog.String(AttrKeyEnvironment, "prod"), attrs[2])
}
