package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"blog-search-api/infrastructure/logger/logruslogger"
	"blog-search-api/infrastructure/logger/zaplogger"
	"blog-search-api/pkg/config"
)

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		backend string
		check   func(t *testing.T, v interface{})
	}{
		{"logrus", func(t *testing.T, v interface{}) { assert.IsType(t, &logruslogger.LogrusLogger{}, v) }},
		{"", func(t *testing.T, v interface{}) { assert.IsType(t, &logruslogger.LogrusLogger{}, v) }},
		{"zap", func(t *testing.T, v interface{}) { assert.IsType(t, &zaplogger.ZapLogger{}, v) }},
	}

	for _, tt := range tests {
		t.Run("backend "+tt.backend, func(t *testing.T) {
			l, closer, err := New(config.LoggingConfig{Backend: tt.backend, Level: "info", Format: "json"})
			require.NoError(t, err)
			defer closer.Close()
			tt.check(t, l)
		})
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Backend: "syslog"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syslog")
}

func TestOutput(t *testing.T) {
	stdout := Output("")
	assert.NoError(t, stdout.Close())

	path := filepath.Join(t.TempDir(), "app.log")
	file := Output(path)
	assert.IsType(t, &lumberjack.Logger{}, file)
	defer file.Close()
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, closer, err := New(config.LoggingConfig{Backend: "zap", Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	l.Info("Server started", map[string]interface{}{"port": "8000"})
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Server started"))
}
