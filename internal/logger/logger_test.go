package logger_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/fluentval/internal/logger"
)

func TestParse(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, logger.ParseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("bogus"))

	assert.Equal(t, logger.FormatJSON, logger.ParseFormat("JSON"))
	assert.Equal(t, logger.FormatConsole, logger.ParseFormat("pretty"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New("info", logger.FormatJSON, &buf)
	l.Debug("hidden")
	l.Info("generated", zap.Int("constants", 3))
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "generated", entry["msg"])
	assert.EqualValues(t, 3, entry["constants"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New("debug", logger.FormatConsole, &buf)
	l.Debug("parsed package", zap.String("dir", "./models"))

	assert.Contains(t, buf.String(), " | DEBUG | parsed package")
	assert.Contains(t, buf.String(), `"dir": "./models"`)
}
