//go:build unit
// +build unit

package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/text-vault/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		lines = append(lines, entry)
	}
	return lines
}

func TestFileLogger_WritesJSONLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "text-vault.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Debug("debug message")
	logger.Info("Signed ", 12, " bytes with ", "blake3")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 3)

	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "Signed 12 bytes with blake3", lines[0]["msg"])
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, "ERROR", lines[2]["level"])
	assert.Equal(t, "error message", lines[2]["msg"])
}

func TestFileLogger_DebugLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")

	logger := NewFileLogger(config.LogLevelDebug, logPath, 1, 1, 1)
	logger.Debug("chacha20 decryption succeeded")

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG", lines[0]["level"])
}

func TestFileLogger_Panic(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "panic.log")
	logger := NewFileLogger(config.LogLevelError, logPath, 1, 1, 1)

	assert.PanicsWithValue(t, "unrecoverable", func() {
		logger.Panic("unrecoverable")
	})

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 1)
	assert.Equal(t, "unrecoverable", lines[0]["msg"])
}
