// Package logging builds the zap logger shared by a run. Entries go to the
// console and to a log file that is overwritten on every run.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger.
type Options struct {
	// Level is the minimum level: debug, info, warn or error. Unknown
	// values fall back to info.
	Level string
	// File is the log file path. Empty disables file output.
	File string
	// Console receives console output. Defaults to stdout.
	Console io.Writer
}

// New returns a logger and a close function that flushes and closes the
// log file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level := ParseLevel(opts.Level)

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	enc := zapcore.NewConsoleEncoder(encoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(console)), level),
	}

	var file *os.File
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, nil, eris.Wrapf(err, "failed to create log directory for %s", opts.File)
		}
		f, err := os.Create(opts.File)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "failed to open log file %s", opts.File)
		}
		file = f
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(file), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.CallerKey = ""
	return cfg
}
