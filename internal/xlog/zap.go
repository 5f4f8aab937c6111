package xlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type xLogger struct {
	l *zap.Logger
}

func (x *xLogger) Debug(msg string, fields ...zap.Field) { x.l.Debug(msg, fields...) }
func (x *xLogger) Info(msg string, fields ...zap.Field)  { x.l.Info(msg, fields...) }
func (x *xLogger) Warn(msg string, fields ...zap.Field)  { x.l.Warn(msg, fields...) }
func (x *xLogger) Error(err error, msg string, fields ...zap.Field) {
	x.l.Error(msg, append([]zap.Field{zap.Error(err)}, fields...)...)
}
func (x *xLogger) Sync() error { return x.l.Sync() }

type config struct {
	level    Level
	encoding Encoding
	writer   zapcore.WriteSyncer
}

type Option func(*config)

func WithLevel(lvl Level) Option {
	return func(c *config) { c.level = lvl }
}

func WithEncoding(enc Encoding) Option {
	return func(c *config) { c.encoding = enc }
}

func WithWriter(ws zapcore.WriteSyncer) Option {
	return func(c *config) { c.writer = ws }
}

// New builds a Logger: a console/JSON encoder chosen by option, a level
// enabler, and a caller-skip of 1 so the reported call site is the
// skl/pqueue call, not this wrapper.
func New(opts ...Option) Logger {
	cfg := &config{
		level:    LevelInfo,
		encoding: JSON,
		writer:   zapcore.Lock(os.Stdout),
	}
	for _, o := range opts {
		o(cfg)
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:   "msg",
		LevelKey:     "lvl",
		TimeKey:      "ts",
		NameKey:      "component",
		CallerKey:    "callAt",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
		EncodeName:   zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(cfg.encoding.encoderFn()(encCfg), cfg.writer, cfg.level.zapLevel())
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named("xlfskl")
	return &xLogger{l: l}
}

// Noop returns a Logger that discards everything, used as the default when
// a caller does not opt into logging.
func Noop() Logger {
	return &xLogger{l: zap.NewNop()}
}
