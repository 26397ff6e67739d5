package logger_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/maxviazov/report-export-service/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production environment",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
				TimeField:      "timestamp",
				Fields:         map[string]interface{}{"key": "value"},
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "invalid configuration - wrong env",
			config: &logpkg.LoggerConfig{
				ServiceName: "bad-service",
				Env:         "wrong-env",
				Level:       "debug",
			},
			expectError: true,
		},
		{
			name: "invalid log level",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "invalid-level",
			},
			expectError: true,
		},
		{
			name: "invalid time format",
			config: &logpkg.LoggerConfig{
				Env:        "prod",
				TimeFormat: "iso",
			},
			expectError: true,
		},
		{
			name: "valid staging environment on stderr",
			config: &logpkg.LoggerConfig{
				Env:          "staging",
				Level:        "warn",
				OutputTarget: "stderr",
				TimeFormat:   "unix",
				Stacktrace:   true,
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "valid development environment without debug",
			config: &logpkg.LoggerConfig{
				Env:   "dev",
				Level: "info",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "valid production environment with additional fields",
			config: &logpkg.LoggerConfig{
				Env:        "prod",
				Level:      "error",
				Fields:     map[string]interface{}{"customField": "customValue"},
				WithCaller: true,
			},
			wantLevel: zerolog.ErrorLevel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, closeFn, err := logpkg.New(test.config)
			assert.NotNil(t, closeFn)
			if test.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.wantLevel, zerolog.GlobalLevel())
		})
	}

	t.Run("debug log file creation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "debug.log")
		config := &logpkg.LoggerConfig{
			Env:       "dev",
			Level:     "debug",
			DebugFile: path,
		}

		l, closeFn, err := logpkg.New(config)
		assert.NoError(t, err)
		l.Debug().Msg("hello")

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)

		assert.NoError(t, closeFn())
		content, readErr := os.ReadFile(path)
		assert.NoError(t, readErr)
		assert.Contains(t, string(content), "hello")
		// a second close reports the already-closed file
		assert.Error(t, closeFn())
	})
}

func TestNew_Defaults(t *testing.T) {
	cfg := &logpkg.LoggerConfig{}
	_, closeFn, err := logpkg.New(cfg)
	assert.NoError(t, err)
	assert.NoError(t, closeFn())

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "report-export-service", cfg.ServiceName)
	assert.Equal(t, "ts", zerolog.TimestampFieldName)
	assert.Equal(t, time.RFC3339Nano, zerolog.TimeFieldFormat)
	assert.True(t, cfg.Stacktrace)
	assert.Empty(t, cfg.DebugFile)
}
