package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable holding the log level used when no
// level is given explicitly.
const EnvLevel = "QUIRE_LOG"

// The terminal belongs to the editor, so nothing is logged until a log file
// is configured.
var defaultLogger atomic.Pointer[log.Logger]

func init() {
	defaultLogger.Store(New(io.Discard, "info"))
}

// New creates a logger writing to w with the specified level.
// Valid levels: "debug", "info", "warn", "error".
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

// OpenFile truncates the file at path and returns a logger writing to it,
// along with the file so the caller can close it. An empty level falls back
// to the EnvLevel environment variable.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	return New(f, level), f, nil
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return defaultLogger.Load()
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(Default(), level)
}
