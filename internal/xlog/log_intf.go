package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a small string enum kept separate from zapcore.Level so callers
// never need to import zap just to configure this package.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

func (lvl Level) zapLevel() zapcore.Level {
	switch lvl {
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelDebug:
		fallthrough
	default:
		return zapcore.DebugLevel
	}
}

type Encoding uint8

const (
	JSON Encoding = iota
	Console
)

func (e Encoding) encoderFn() func(zapcore.EncoderConfig) zapcore.Encoder {
	if e == Console {
		return zapcore.NewConsoleEncoder
	}
	return zapcore.NewJSONEncoder
}

// Logger is the structured-logging surface the skl and pqueue packages take
// a dependency on. It is intentionally narrow: every method the hot path
// calls is level-gated internally by the *zap.Logger it wraps, so callers
// never need to guard a call with an Enabled() check.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	Sync() error
}
