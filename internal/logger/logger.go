// Package logger provides structured logging and crash recovery for complexity-hook.
//
// The hook's stderr carries a fixed contract (assessment JSON plus an
// advisory line), so diagnostics go to stderr only in verbose mode. File
// logging is opt-in and rotated with lumberjack.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/josephgoksu/complexity-hook/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a zap logger together with the resources it owns.
type Logger struct {
	*zap.Logger
	file *lumberjack.Logger
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// New builds a logger from cfg. When verbose is set, a console encoder writes
// debug and above to stderr. When cfg.File is set, JSON lines at cfg.Level
// are appended to a rotating file. With neither, the logger is a no-op.
func New(cfg types.LogConfig, verbose bool, stderr io.Writer) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cores []zapcore.Core
	l := &Logger{}

	if verbose {
		if stderr == nil {
			stderr = os.Stderr
		}
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		))
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		l.file = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(l.file),
			level,
		))
	}

	if len(cores) == 0 {
		l.Logger = zap.NewNop()
		return l, nil
	}
	l.Logger = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// Close flushes buffered entries and closes the log file, if any.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
