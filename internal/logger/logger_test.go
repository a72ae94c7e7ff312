// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"leb.io/primetools/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	for _, cfg := range []config.LoggingConfig{
		{Level: "info", Format: "json", Output: "stdout"},
		{Level: "debug", Format: "text", Output: "stderr"},
		{Level: "warn", Format: "text", Output: ""},
	} {
		l, err := New(&cfg)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
	assert.NotNil(t, NewDefault())
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primetools.log")
	l, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	l.Infow("sieved", "count", 25)
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"msg":"sieved"`)
	assert.Contains(t, line, `"count":25`)
}

func TestNewBadFileOutput(t *testing.T) {
	_, err := New(&config.LoggingConfig{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	l.WithCommand("between").WithSeed(7).WithFields(map[string]interface{}{"min": 10}).Debug("walk")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "between", fields["command"])
	assert.Equal(t, int64(7), fields["seed"])
	assert.Equal(t, int64(10), fields["min"])
}

func TestLevelFilters(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := NewWithCore(core)
	l.Info("quiet")
	l.Warn("loud")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "loud", logs.All()[0].Message)
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("nothing")
	assert.NoError(t, l.Sync())
}
