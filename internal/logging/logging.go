// Package logging builds the zap logger. The TUI owns the terminal, so
// records go only to a rotating JSON file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abhisek/reportcard/internal/config"
)

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// New opens the rotating log file described by cfg and returns a logger
// tagged with a fresh session_id. The returned closer flushes and closes
// the file.
func New(cfg config.LogConfig) (*zap.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	logger, err := NewWithWriter(cfg.Level, zapcore.AddSync(rotator))
	if err != nil {
		rotator.Close()
		return nil, nil, err
	}
	return logger, closer{logger: logger, file: rotator}, nil
}

// NewWithWriter builds the JSON logger on an arbitrary sink.
func NewWithWriter(level string, w zapcore.WriteSyncer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), w, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("session_id", uuid.NewString())), nil
}

type closer struct {
	logger *zap.Logger
	file   io.Closer
}

func (c closer) Close() error {
	_ = c.logger.Sync()
	return c.file.Close()
}
