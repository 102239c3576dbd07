package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log  *zap.SugaredLogger
	once sync.Once
)

// SetupLogger initializes the logger writing to stdout and a rotated file
// under the given directory.
func SetupLogger(level, dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	fileSyncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "society.log"),
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})

	lvl := parseLevel(level)
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), lvl),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileSyncer, lvl),
	)

	log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	return nil
}

// parseLevel maps a level name to a zap level, defaulting to info.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// get returns the configured logger, falling back to a stderr logger so
// callers never have to nil-check.
func get() *zap.SugaredLogger {
	once.Do(func() {
		if log == nil {
			log = zap.NewExample().Sugar()
		}
	})
	return log
}

// Info logs an info level message.
func Info(format string, v ...interface{}) {
	get().Infof(format, v...)
}

// Warning logs a warning level message.
func Warning(format string, v ...interface{}) {
	get().Warnf(format, v...)
}

// Error logs an error level message.
func Error(format string, v ...interface{}) {
	get().Errorf(format, v...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = get().Sync()
}
