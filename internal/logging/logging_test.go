package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(lvl)
		require.NoError(t, err, lvl)

		want, _ := zapcore.ParseLevel(lvl)
		assert.True(t, logger.Core().Enabled(want), lvl)
		if want > zapcore.DebugLevel {
			assert.False(t, logger.Core().Enabled(want-1), lvl)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.Error(t, err)
}

func TestInit_ReplacesGlobals(t *testing.T) {
	logger, done, err := Init("warn")
	require.NoError(t, err)

	assert.Same(t, logger, zap.L())
	done()
	assert.NotSame(t, logger, zap.L())
}
