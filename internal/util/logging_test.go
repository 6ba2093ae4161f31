package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLevel(tc.input))
		})
	}
}

func TestLogger_ProductionWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	orig := slog.Default()
	slog.SetDefault(slog.New(newHandler(buf, "info", "production")))
	defer slog.SetDefault(orig)

	logger := NewLogger("TestComponent")
	logger.Error("remote call failed", errors.New("boom"), "attempt", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "remote call failed", entry["msg"])
	assert.Equal(t, "TestComponent", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, float64(1), entry["attempt"])
}

func TestLogger_DebugSuppressedAtInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	orig := slog.Default()
	slog.SetDefault(slog.New(newHandler(buf, "info", "development")))
	defer slog.SetDefault(orig)

	logger := NewLogger("TestComponent")
	logger.Start("Work")
	logger.Section("Step")
	assert.Empty(t, buf.String())

	logger.Success("done")
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "component=TestComponent")
}
