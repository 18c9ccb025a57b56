// Package logger provides a simple logging interface for simplelogin components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "SIMPLELOGIN_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger implements Logger on top of charmbracelet/log.
// Debug messages are only printed when SIMPLELOGIN_DEBUG is set.
type envLogger struct {
	l *log.Logger
}

// NewEnvLogger creates a stderr logger that respects SIMPLELOGIN_DEBUG.
// The prefix is prepended to all log messages (e.g., "login" or "config").
func NewEnvLogger(prefix string) Logger {
	return NewEnvLoggerWithOutput(prefix, os.Stderr)
}

// NewEnvLoggerWithOutput is NewEnvLogger writing to w. The login screen owns
// the terminal while it runs, so the CLI points this at a log file instead.
func NewEnvLoggerWithOutput(prefix string, w io.Writer) Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  log.DebugLevel,
	})
	return &envLogger{l: l}
}

func (e *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) != "" {
		e.l.Debugf(format, args...)
	}
}

func (e *envLogger) Info(format string, args ...interface{}) {
	e.l.Infof(format, args...)
}

func (e *envLogger) Warn(format string, args ...interface{}) {
	e.l.Warnf(format, args...)
}

func (e *envLogger) Error(format string, args ...interface{}) {
	e.l.Errorf(format, args...)
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// HasMessage returns true if any captured message equals msg.
func (l *BufferLogger) HasMessage(msg string) bool {
	for _, m := range l.Messages {
		if m.Message == msg {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
