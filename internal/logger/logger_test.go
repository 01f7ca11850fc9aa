package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		enabled zapcore.Level
		hidden  zapcore.Level
		wantErr bool
	}{
		{name: "Should enable debug", level: "debug", enabled: zap.DebugLevel, hidden: zapcore.InvalidLevel},
		{name: "Should accept upper case", level: "INFO", enabled: zap.InfoLevel, hidden: zap.DebugLevel},
		{name: "Should default empty to info", level: "", enabled: zap.InfoLevel, hidden: zap.DebugLevel},
		{name: "Should accept warn", level: "warn", enabled: zap.WarnLevel, hidden: zap.InfoLevel},
		{name: "Should accept warning alias", level: "warning", enabled: zap.WarnLevel, hidden: zap.InfoLevel},
		{name: "Should reject garbage", level: "something", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid log level")
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled))
			if tt.hidden != zapcore.InvalidLevel {
				assert.False(t, log.Core().Enabled(tt.hidden))
			}
		})
	}
}

func TestCronLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cl := NewCronLogger(zap.New(core))

	cl.Info("schedule", "entry", 1)
	cl.Error(errors.New("boom"), "job panicked", "entry", 1)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "cron", entries[0].LoggerName)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}
