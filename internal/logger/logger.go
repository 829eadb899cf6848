// Package logger provides a simple logging interface for pintui components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DebugEnv enables debug output for environment loggers when set to any value.
const DebugEnv = "PINTUI_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger implements Logger on top of zerolog.
// Debug messages are only printed when PINTUI_DEBUG is set or verbose is on.
type envLogger struct {
	prefix  string
	zl      zerolog.Logger
	verbose bool
}

// NewEnvLogger creates a stderr logger that respects the PINTUI_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[spinner]" or "[config]").
func NewEnvLogger(prefix string) Logger {
	return NewWriterLogger(prefix, os.Stderr, false)
}

// NewWriterLogger creates a logger writing human-readable lines to w.
// When verbose is true debug messages are emitted regardless of PINTUI_DEBUG.
func NewWriterLogger(prefix string, w io.Writer, verbose bool) Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.Kitchen,
	}
	return &envLogger{
		prefix:  prefix,
		zl:      zerolog.New(console).With().Timestamp().Logger(),
		verbose: verbose,
	}
}

func (l *envLogger) format(format string) string {
	if l.prefix == "" {
		return format
	}
	return l.prefix + " " + format
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if l.verbose || os.Getenv(DebugEnv) != "" {
		l.zl.Debug().Msgf(l.format(format), args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(l.format(format), args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(l.format(format), args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(l.format(format), args...)
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

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}

var defaultLogger = NewEnvLogger("")

// Default returns the package-level logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
