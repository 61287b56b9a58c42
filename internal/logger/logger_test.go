package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, l)

	_, err = NewLogger("loud")
	require.Error(t, err)
}

func TestZeroLoggerIsSafe(t *testing.T) {
	var l Logger

	require.NotPanics(t, func() {
		l.Info("info", zap.Int("n", 1))
		l.Warn("warn")
		l.Error("error")
		_ = l.Sync()
	})
}
