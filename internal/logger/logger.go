package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// IndexStarted logs the start of an indexing run
func (l *Logger) IndexStarted(notesDir string) {
	l.Info("index started",
		"notes_dir", notesDir)
}

// IndexCompleted logs the completion of an indexing run
func (l *Logger) IndexCompleted(filesIndexed int, errors int, duration time.Duration) {
	l.Info("index completed",
		"files_indexed", filesIndexed,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// DocumentParsed logs a parsed note
func (l *Logger) DocumentParsed(file string, elements, links int) {
	l.Debug("document parsed",
		"file", file,
		"elements", elements,
		"links", links)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// IndexError logs an index persistence error
func (l *Logger) IndexError(operation string, err error) {
	l.Error("index error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(notesDir, format string, nest bool) {
	l.Debug("config loaded",
		"notes_dir", notesDir,
		"format", format,
		"nest", nest)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// DanglingLink logs a link whose target matches no note
func (l *Logger) DanglingLink(file, target string) {
	l.Warn("dangling link",
		"file", file,
		"target", target)
}
