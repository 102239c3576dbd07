package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel, // default
		"":        zapcore.InfoLevel,
	}
	for in, exp := range cases {
		assert.Equal(t, exp, parseLevel(in))
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, SetupLogger("info", dir))

	Info("hello %s", "world")
	Warning("careful")
	Error("boom")
	Sync()

	_, err := os.Stat(filepath.Join(dir, "society.log"))
	assert.NoError(t, err)
}
