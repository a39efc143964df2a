// ABOUTME: Zap logger implementation of the core Logger interface
// ABOUTME: Builds a zap core over any writer with JSON or console encoding

package zaplogger

import (
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using zap
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a logger writing to out. Unknown levels fall back to info.
func NewZapLogger(out io.Writer, level, format string) *ZapLogger {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(format, "text") {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), lvl)
	return &ZapLogger{logger: zap.New(core)}
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

// Warn logs a warning message
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

// Error logs an error message
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// toZapFields converts a field map in key order so output is stable
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
