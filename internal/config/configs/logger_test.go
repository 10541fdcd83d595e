package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Logger{Level: "warn", Format: "JSON"}.NewLogger(&buf)

	log.Info("dropped")
	log.Warn("kept", slog.Int("n", 1))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, float64(1), line["n"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	Logger{Format: "xml"}.NewLogger(&buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
