// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/motionfix-api/internal/config"
	"github.com/phrazzld/motionfix-api/internal/platform/logger"
)

func TestSetupReturnsConfiguredLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	log, err := logger.Setup(config.ServerConfig{LogLevel: "info"})

	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, log, slog.Default(), "Setup should install the logger as default")
}

func TestSetupLogLevels(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	tests := []struct {
		name         string
		level        string
		debugEnabled bool
		infoEnabled  bool
		warnEnabled  bool
	}{
		{"debug level", "debug", true, true, true},
		{"info level", "info", false, true, true},
		{"warn level", "warn", false, false, true},
		{"error level", "error", false, false, false},
		{"uppercase accepted", "DEBUG", true, true, true},
		{"invalid falls back to info", "verbose", false, true, true},
		{"empty falls back to info", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{LogLevel: tt.level})
			require.NoError(t, err)

			ctx := context.Background()
			assert.Equal(t, tt.debugEnabled, log.Enabled(ctx, slog.LevelDebug), "debug")
			assert.Equal(t, tt.infoEnabled, log.Enabled(ctx, slog.LevelInfo), "info")
			assert.Equal(t, tt.warnEnabled, log.Enabled(ctx, slog.LevelWarn), "warn")
		})
	}
}

func TestStructuredJSONOutput(t *testing.T) {
	logBuf, log, cleanup := logger.SetupTestLogger(t, nil)
	defer cleanup()

	log.Info("structured test message", slog.String("file_name", "song.wav"))

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "structured test message", entries[0]["msg"])
	assert.Equal(t, "song.wav", entries[0]["file_name"])
	logger.AssertLogField(t, logBuf, "level", "INFO")
}

func TestFromContextOrDefault(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		fallback *slog.Logger
		want     *slog.Logger
	}{
		{
			name:     "logger from context wins",
			ctx:      logger.WithLogger(context.Background(), stored),
			fallback: fallback,
			want:     stored,
		},
		{
			name:     "fallback when context empty",
			ctx:      context.Background(),
			fallback: fallback,
			want:     fallback,
		},
		{
			name:     "slog default when nothing available",
			ctx:      context.Background(),
			fallback: nil,
			want:     slog.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.FromContextOrDefault(tt.ctx, tt.fallback)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestFromContextWithoutLogger(t *testing.T) {
	assert.Nil(t, logger.FromContext(context.Background()))
}
