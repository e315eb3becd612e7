// SPDX-License-Identifier: MIT

package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvtda/validation"
)

// NewLogger builds a production JSON logger at the given level
// (debug, info, warn, error; anything else means info).
func NewLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = ParseLogLevel(level)

	return config.Build()
}

// ParseLogLevel maps a case-insensitive level name to an atomic level.
func ParseLogLevel(s string) zap.AtomicLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "WARN", "WARNING":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "ERROR":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

// ZapWarnings adapts a logger into a validation.WarningHandler: each
// dimensionality warning becomes one Warn entry.
func ZapWarnings(logger *zap.Logger) validation.WarningHandler {
	return func(w *validation.Warning) {
		logger.Warn("dimensionality warning",
			zap.String("op", w.Op),
			zap.Stringer("kind", w.Kind),
			zap.String("message", w.Message),
		)
	}
}
