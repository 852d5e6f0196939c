package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "notionbridge",
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Formatter:       log.LogfmtFormatter,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel maps a config level name to a log level. Unknown names fall
// back to warn.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// ConversionStarted logs the start of a document conversion
func (l *Logger) ConversionStarted(id, source string, blocks int) {
	l.Info("conversion started",
		"id", id,
		"source", source,
		"blocks", blocks)
}

// ConversionCompleted logs the end of a document conversion
func (l *Logger) ConversionCompleted(id string, blocks, skipped int, duration time.Duration) {
	l.Info("conversion completed",
		"id", id,
		"blocks", blocks,
		"skipped", skipped,
		"duration", duration.Round(time.Microsecond))
}

// NodeSkipped logs a top-level node that could not be converted
func (l *Logger) NodeSkipped(index int, tag string, err error) {
	l.Warn("node skipped",
		"index", index,
		"tag", tag,
		"error", err)
}

// ParseError logs an input that could not be parsed
func (l *Logger) ParseError(source, format string, err error) {
	l.Error("parse failed",
		"source", source,
		"format", format,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, format string) {
	l.Debug("config loaded",
		"path", path,
		"input_format", format)
}

// OutputWritten logs where converted blocks went
func (l *Logger) OutputWritten(dest string, blocks int) {
	l.Debug("output written",
		"dest", dest,
		"blocks", blocks)
}
