// ABOUTME: Logrus logger implementation of the core Logger interface
// ABOUTME: Supports JSON or text output at a configurable level

package logruslogger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus
type LogrusLogger struct {
	entry *logrus.Logger
}

// NewLogrusLogger creates a logger writing to out. Unknown levels fall back to info.
func NewLogrusLogger(out io.Writer, level, format string) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.EqualFold(format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	return &LogrusLogger{entry: l}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}
