package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingRulesFlushesLog(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := t.TempDir()
	logFile := filepath.Join(dir, "appraiser.log")
	configPath := filepath.Join(dir, "config.yaml")
	config := fmt.Sprintf(`
logger:
  level: info
  file: %s
server:
  address: "127.0.0.1:0"
engine:
  rules: %s
`, logFile, filepath.Join(dir, "missing-rules.yaml"))
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o600))

	err := run(configPath, filepath.Join(dir, "absent.env"))
	require.Error(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Unable to load insight rules")
}

func TestRun_InvalidConfig(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "absent.yaml"), filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
