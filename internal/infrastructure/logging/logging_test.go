package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitalworks/shipnav/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name     string
		level    string
		expected slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "WARNING", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "Debug", slog.LevelDebug},
		{"unknown falls back to info", "loud", slog.LevelInfo},
		{"empty falls back to info", "", slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLevel(tc.level))
		})
	}
}

func TestNew_HonorsConfiguredLevel(t *testing.T) {
	logger := New(config.LoggingConfig{Level: "error", Format: "text", Output: "stderr"})

	require.NotNil(t, logger)
	ctx := context.Background()
	assert.True(t, logger.Handler().Enabled(ctx, slog.LevelError))
	assert.False(t, logger.Handler().Enabled(ctx, slog.LevelInfo))
}

func TestNew_DebugEnablesEverything(t *testing.T) {
	logger := New(config.LoggingConfig{Level: "debug", Format: "json", Output: "stdout"})

	assert.True(t, logger.Handler().Enabled(context.Background(), slog.LevelDebug))
}
