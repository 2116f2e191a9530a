// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
)

// EnvLevel names the environment variable that sets the default log level.
const EnvLevel = "ADHDFLOW_LOG_LEVEL"

// FileName is the log file written next to the database while the TUI runs.
const FileName = "adhdflow.log"

// New returns a logger writing to w at the given level ("debug", "info",
// "warn", "error"). An empty level reads EnvLevel and defaults to warn.
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	if level == "" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "adhdflow",
	}), nil
}

// OpenFile opens FileName inside dir for appending.
func OpenFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
