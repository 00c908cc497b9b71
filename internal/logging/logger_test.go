package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/quire/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(&bytes.Buffer{}, testCase.level)
			require.NotNil(t, logger)
			assert.Equal(t, testCase.expected, logger.GetLevel())
		})
	}
}

func TestDefault_DiscardsUntilConfigured(t *testing.T) {
	logger := logging.Default()
	require.NotNil(t, logger)
	logger.Info("nobody sees this")
}

func TestSetDefaultAndLevel(t *testing.T) {
	// Not parallel because it modifies global state.
	original := logging.Default()
	defer logging.SetDefault(original)

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf, "info"))

	logging.Default().Debug("hidden")
	assert.Empty(t, buf.String())

	logging.SetLevel("debug")
	logging.Default().Debug("shown", logging.FieldPath, "a.rs")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=a.rs")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quire.log")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	logger, closer, err := logging.OpenFile(path, "warn")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Warn("fresh")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale", "file is truncated")
	assert.Contains(t, string(data), "fresh")
}

func TestOpenFile_LevelFromEnvironment(t *testing.T) {
	t.Setenv(logging.EnvLevel, "debug")

	logger, closer, err := logging.OpenFile(filepath.Join(t.TempDir(), "quire.log"), "")
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestOpenFile_MissingDirectory(t *testing.T) {
	_, _, err := logging.OpenFile(filepath.Join(t.TempDir(), "missing", "quire.log"), "info")
	require.Error(t, err)
}

func TestContext(t *testing.T) {
	t.Parallel()

	logger := logging.New(&bytes.Buffer{}, "error")
	ctx := logging.WithLogger(context.Background(), logger)

	assert.Same(t, logger, logging.FromContext(ctx))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}
