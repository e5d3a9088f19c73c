// ABOUTME: Logger backends implementing core/interfaces.Logger
// ABOUTME: New selects logrus (default, optional rotating file) or zap from configuration

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"opportunities-portal-api/core/interfaces"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Backend names accepted by New
const (
	BackendLogrus = "logrus"
	BackendZap    = "zap"
)

// Config selects and tunes a logger backend
type Config struct {
	// Backend is "logrus" or "zap"; empty means logrus
	Backend string

	// Level is debug, info, warn or error; unknown values mean info
	Level string

	// File, when set, receives logs through a rotating writer instead of stdout
	File string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds the configured logger
func New(cfg Config) (interfaces.Logger, error) {
	out := output(cfg)

	switch strings.ToLower(cfg.Backend) {
	case "", BackendLogrus:
		return NewLogrusLogger(out, cfg.Level), nil
	case BackendZap:
		return NewZapLogger(out, cfg.Level), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}

func output(cfg Config) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}
