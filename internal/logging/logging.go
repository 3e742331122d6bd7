// Package logging builds the zap logger shared by the CLI and the language
// server. Output never goes to stdout, which carries the LSP stream.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"riddl/internal/config"
)

// New returns a logger configured from cfg together with its level, which
// the server raises to debug when tracing is switched on.
func New(cfg config.LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, level, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level.SetLevel(parsed)
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Sampling = nil
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch cfg.Format {
	case "", "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		zc.Encoding = "json"
	default:
		return nil, level, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, level, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, level, nil
}
