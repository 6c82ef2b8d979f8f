package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "default config", cfg: DefaultConfig()},
		{
			name: "debug level",
			cfg: &Config{
				Level:      "debug",
				Format:     "console",
				Output:     "stdout",
				TimeFormat: "2006-01-02T15:04:05Z07:00",
			},
		},
		{
			name: "json format to stderr",
			cfg: &Config{
				Level:      "info",
				Format:     "json",
				Output:     "stderr",
				TimeFormat: "2006-01-02T15:04:05Z07:00",
			},
		},
		{
			name: "file output",
			cfg: &Config{
				Level:  "info",
				Format: "json",
				Output: filepath.Join(t.TempDir(), "app.log"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(&Config{Level: "loud", Format: "console", Output: "stdout"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")

	_, err = New(&Config{
		Level:  "info",
		Format: "json",
		Output: filepath.Join(t.TempDir(), "missing", "nested", "app.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open log output")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"INFO", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("bogus")
	require.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx := context.Background()
	ctx, enriched := WithRequestID(ctx, base, "req-123")
	ctx, enriched = WithUserID(ctx, enriched, "user-456")
	ctx, _ = WithVillageID(ctx, enriched, "village-789")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Equal(t, "user-456", GetUserID(ctx))
	assert.Equal(t, "village-789", GetVillageID(ctx))

	FromContext(ctx).Info("hello")
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "user-456", fields["user_id"])
	assert.Equal(t, "village-789", fields["village_id"])
}

func TestFromContextMissing(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
	// No-op logger must not panic
	logger.Info("ignored")
}

func TestContextLoggerEnrichment(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = WithContext(ctx, base)

	L(ctx).Info("scoped", zap.String("extra", "value"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "scoped", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "value", fields["extra"])
}

func TestMapGormLogLevel(t *testing.T) {
	assert.NotEqual(t, MapGormLogLevel("error"), MapGormLogLevel("info"))
	assert.Equal(t, MapGormLogLevel("warn"), MapGormLogLevel("bogus"))

	gl := NewGormLogger(zap.NewNop(), MapGormLogLevel("silent"))
	assert.Equal(t, MapGormLogLevel("silent"), gl.logLevel)
}
