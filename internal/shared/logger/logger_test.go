package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saransh1220/artist-console/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Stdout(t *testing.T) {
	log, err := New(config.LoggerConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "console.log")
	log, err := New(config.LoggerConfig{Output: "file", FilePath: path})
	require.NoError(t, err)

	log.Info("hello")
	_ = log.Sync()

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, level("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, level("error"))
	assert.Equal(t, zapcore.InfoLevel, level("bogus"))
}
