package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Logger()
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &fields))
	return fields
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Caller)
	assert.NotNil(t, cfg.Output)
}

func TestInit_JSONOutput(t *testing.T) {
	buf := captureLogs(t, "debug")

	Info().Str("room", "12x10").Msg("placing")

	fields := decodeLine(t, buf)
	assert.Equal(t, "info", fields["level"])
	assert.Equal(t, "placing", fields["message"])
	assert.Equal(t, "12x10", fields["room"])
	assert.Contains(t, fields, "time")
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureLogs(t, "warn")

	Info().Msg("hidden")
	Debug().Msg("hidden too")
	assert.Empty(t, buf.String())

	Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestComponent(t *testing.T) {
	buf := captureLogs(t, "info")

	l := Component("engine")
	l.Info().Msg("ready")

	assert.Equal(t, "engine", decodeLine(t, buf)["component"])
}

func TestCtx_RequestID(t *testing.T) {
	buf := captureLogs(t, "info")

	ctx := ContextWithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	Ctx(ctx).Info().Msg("handled")

	assert.Equal(t, "req-1", decodeLine(t, buf)["request_id"])
}

func TestCtx_StoredLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), zerolog.New(&buf).With().Str("api", "v1").Logger())

	Ctx(ctx).Info().Msg("stored")

	assert.Equal(t, "v1", decodeLine(t, &buf)["api"])
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
