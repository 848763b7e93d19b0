// Package logger wraps zap behind the small interface the rest of sllist
// logs through.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/sllist/internal/build"
)

// Log levels accepted by NewLogger. LevelNone disables logging.
const (
	LevelNone  = "none"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger is the structured logging surface used across sllist.
type Logger interface {
	Debug(string, ...zap.Field)
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
	Error(string, ...zap.Field)

	// With returns a child logger that adds fields to every entry.
	With(...zap.Field) Logger
}

// ZapLogger is an implementation of Logger that uses the uber/zap logger underneath.
type ZapLogger struct {
	*zap.Logger
}

func (l *ZapLogger) Debug(msg string, fields ...zap.Field) {
	l.Logger.Debug(msg, fields...)
}

func (l *ZapLogger) Info(msg string, fields ...zap.Field) {
	l.Logger.Info(msg, fields...)
}

func (l *ZapLogger) Warn(msg string, fields ...zap.Field) {
	l.Logger.Warn(msg, fields...)
}

func (l *ZapLogger) Error(msg string, fields ...zap.Field) {
	l.Logger.Error(msg, fields...)
}

func (l *ZapLogger) With(fields ...zap.Field) Logger {
	return &ZapLogger{l.Logger.With(fields...)}
}

// NewNoopLogger provides noop logger that satisfies the logger interface.
func NewNoopLogger() *ZapLogger {
	return &ZapLogger{
		zap.NewNop(),
	}
}

func parseLevel(logLevel string) (zapcore.Level, error) {
	switch logLevel {
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelInfo:
		return zap.InfoLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, fmt.Errorf("unknown log level: %s", logLevel)
	}
}

// NewLogger builds a logger writing to w. Results of list operations go to
// stdout, so callers normally pass stderr here.
func NewLogger(w io.Writer, logFormat, logLevel string) (*ZapLogger, error) {
	if logLevel == LevelNone {
		return NewNoopLogger(), nil
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.CallerKey = ""
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch logFormat {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	case FormatText:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}

	log := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level)))
	if logFormat == FormatJSON {
		log = log.With(zap.String("build.version", build.Version), zap.String("build.commit", build.Commit))
	}

	return &ZapLogger{log}, nil
}
