// ABOUTME: Logger factory selects the logging backend from configuration
// ABOUTME: Writes to stdout, or to a size-rotated file through lumberjack

package logger

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"blog-search-api/core/interfaces"
	"blog-search-api/infrastructure/logger/logruslogger"
	"blog-search-api/infrastructure/logger/zaplogger"
	"blog-search-api/pkg/config"
)

const (
	BackendLogrus = "logrus"
	BackendZap    = "zap"
)

// Output returns the destination for log lines. An empty path means stdout.
func Output(path string) io.WriteCloser {
	if path == "" {
		return nopCloser{os.Stdout}
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// New builds the configured logger. The returned closer releases the log file.
func New(cfg config.LoggingConfig) (interfaces.Logger, io.Closer, error) {
	out := Output(cfg.File)

	switch cfg.Backend {
	case BackendLogrus, "":
		return logruslogger.NewLogrusLogger(out, cfg.Level, cfg.Format), out, nil
	case BackendZap:
		zl := zaplogger.NewZapLogger(out, cfg.Level, cfg.Format)
		return zl, closerFunc(func() error {
			// stdout rejects fsync on some platforms
			_ = zl.Sync()
			return out.Close()
		}), nil
	default:
		out.Close()
		return nil, nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
