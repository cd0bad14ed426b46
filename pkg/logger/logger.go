// Package logger provides logging functionality for the tackle application.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})
	// Debugf logs a formatted message only shown in verbose mode.
	Debugf(format string, args ...interface{})
	// Warnf logs a formatted warning.
	Warnf(format string, args ...interface{})
}

// Level selects how much the default logger prints.
type Level int

// Logger levels.
const (
	LevelInfo Level = iota
	LevelDebug
	LevelQuiet
)

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// defaultLogger writes leveled, styled output through charmbracelet/log.
// The underlying logger serializes writes, so it is safe for concurrent use.
type defaultLogger struct {
	log *log.Logger
}

// NewDefaultLogger creates a new default logger writing to stderr.
func NewDefaultLogger(level Level) Logger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a default logger writing to w.
func NewWriterLogger(w io.Writer, level Level) Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "tackle",
	})

	switch level {
	case LevelDebug:
		l.SetLevel(log.DebugLevel)
		l.SetReportTimestamp(true)
	case LevelQuiet:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}

	return &defaultLogger{log: l}
}

// Logf writes a formatted informational message.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.log.Info(fmt.Sprintf(format, args...))
}

// Debugf writes a formatted debug message.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	d.log.Debug(fmt.Sprintf(format, args...))
}

// Warnf writes a formatted warning.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.log.Warn(fmt.Sprintf(format, args...))
}
