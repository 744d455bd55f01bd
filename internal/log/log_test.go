package log_test

import (
	"bytes"
	"testing"

	"github.com/plus3/blockfall/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, log.LevelInfo)

	logger.Debugf("hidden %d", 1)
	logger.Infof("shown %d", 2)
	logger.Errorf("failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO: shown 2")
	assert.Contains(t, out, "ERROR: failed: boom")
}

func TestWithTag(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, log.LevelDebug).With("Round")

	logger.Warnf("topped out")

	assert.Contains(t, buf.String(), "WARN: [Round] topped out")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, log.LevelDebug)
	logger.SetLevel(log.LevelNone)

	logger.Errorf("dropped")

	assert.Empty(t, buf.String())
	assert.Equal(t, log.LevelNone, logger.Level())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level log.Level
		ok    bool
	}{
		{"debug", log.LevelDebug, true},
		{"INFO", log.LevelInfo, true},
		{"warning", log.LevelWarn, true},
		{"Error", log.LevelError, true},
		{"none", log.LevelNone, true},
		{"loud", log.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, ok := log.ParseLevel(tt.in)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNilAndDiscard(t *testing.T) {
	var logger *log.Logger
	assert.NotPanics(t, func() { logger.Infof("nothing") })
	assert.NotPanics(t, func() { log.Discard().Errorf("nothing") })
}
