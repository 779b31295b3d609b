package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

const defaultZapLevel = zapcore.DebugLevel

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	if format == FormatJSON {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func newZapLogger(levelStr, format string) *Logger {
	ws := zapcore.Lock(os.Stdout)
	core := zapcore.NewCore(newEncoder(format), zapcore.AddSync(ws), zap.NewAtomicLevelAt(toZapLevel(levelStr)))
	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(kv ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(kv...)}
}
