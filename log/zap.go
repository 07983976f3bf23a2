package log

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

// WithZap adapts a zap logger to the Logger interface. The context level
// maps onto the zap level and the context names join into the logger name.
func WithZap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

type zapLogger struct {
	l *zap.Logger
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl == QUIET {
		return
	}
	logger := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		logger = logger.Named(strings.Join(names, "."))
	}
	if ce := logger.Check(zapLevel(lvl), msg); ce != nil {
		zapFields := make([]zap.Field, 0, len(fields))
		for _, f := range fields {
			zapFields = append(zapFields, zapField(f))
		}
		ce.Write(zapFields...)
	}
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.ErrorLevel
	}
}

func zapField(f Field) zap.Field {
	switch f.Type() {
	case IntType:
		return zap.Int64(f.key, f.vint)
	case StringType:
		return zap.String(f.key, f.vstr)
	case BoolType:
		return zap.Bool(f.key, f.vint != 0)
	case DurationType:
		return zap.Duration(f.key, time.Duration(f.vint))
	case ErrorType:
		err, _ := f.vany.(error)

		return zap.NamedError(f.key, err)
	default:
		return zap.Any(f.key, f.vany)
	}
}
