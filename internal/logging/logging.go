// Package logging constructs the file-backed logger used by th.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a logger writing logfmt records to w at the given level.
// Stdout belongs to the menu, so callers should hand New a file or buffer.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "th",
	})
}

// Open returns a logger appending to the file at path, creating parent
// directories as needed, along with a close func. If the sink cannot be
// opened the returned logger discards records instead of failing the
// session.
func Open(path string, level log.Level) (*log.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard(), func() {}
	}

	return New(f, level), func() { f.Close() }
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}

// ParseLevel maps a config level name to a charmbracelet/log Level.
// Unknown names fall back to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
