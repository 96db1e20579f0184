package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"appraiser/internal/configuration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"), "unknown level should fall back to info")
}

func TestNewLogger_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String(), "info should be filtered at warn level")

	logger.Warn("shown", "price", 423250.0)
	record := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, 423250.0, record["price"])
}

func TestNewWriter_Stdout(t *testing.T) {
	w := NewWriter(configuration.LoggerConfig{Level: "info"})
	assert.NoError(t, w.Close(), "closing stdout writer should be a no-op")
}

func TestNewWriter_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appraiser.log")
	w := NewWriter(configuration.LoggerConfig{Level: "info", File: path, MaxSize: 1, MaxBackups: 1})

	logger := NewLogger("info", w)
	logger.Info("estimate", "model", "Ensemble")
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"model":"Ensemble"`)
}
