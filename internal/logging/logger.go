package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "HWGRADE_LOG_LEVEL"

// ParseLevel maps a level name to a zap level. Unknown names fall back
// to info.
func ParseLevel(level string) zapcore.Level {
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

// New builds a logger that writes console-encoded entries into j.
// If level is empty, HWGRADE_LOG_LEVEL is consulted; if that is empty
// too, a no-op logger is returned.
//
// Every logger carries a "session" field so that journals from several
// runs appended to one file can be told apart.
func New(level string, j *Journal) (*zap.Logger, error) {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		return zap.NewNop(), nil
	}
	if j == nil {
		return nil, fmt.Errorf("logging: journal is required")
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(j),
		zap.NewAtomicLevelAt(ParseLevel(level)),
	)

	return zap.New(core, zap.AddCaller()).With(zap.String("session", uuid.NewString())), nil
}
