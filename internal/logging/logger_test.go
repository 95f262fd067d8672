package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closeFn, err := New("warn", "", &buf)
	require.NoError(t, err)
	defer closeFn()

	log.Info("hidden")
	log.Warn("shown", zap.String("user", "me"))
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, `"user": "me"`)
}

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mw.log")
	var buf bytes.Buffer
	log, closeFn, err := New("debug", path, &buf)
	require.NoError(t, err)

	log.Debug("score computed", zap.Float64("overall", 62))
	require.NoError(t, closeFn())
	assert.ErrorIs(t, closeFn(), os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "score computed", rec["msg"])
	assert.Equal(t, 62.0, rec["overall"])
}

func TestNew_BadFilePath(t *testing.T) {
	_, _, err := New("info", filepath.Join(t.TempDir(), "missing", "dir", "mw.log"), &bytes.Buffer{})
	assert.Error(t, err)
}
