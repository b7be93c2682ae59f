package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)

	id := GenerateRequestID()
	assert.NotEmpty(t, id)

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestConfigLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{Level: "debug"}.LogLevel())
	assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
	assert.Equal(t, slog.LevelError, Config{Level: "error"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "bogus"}.LogLevel())
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())
}

func TestFromContextWithoutRequestID(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotNil(t, log)
}
