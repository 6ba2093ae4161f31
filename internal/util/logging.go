package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides consistent logging across services
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a new logger with a prefix
func NewLogger(prefix string) *Logger {
	return &Logger{
		log: slog.Default().With("component", prefix),
	}
}

// Start logs the start of a process
func (l *Logger) Start(name string) {
	l.log.Debug(fmt.Sprintf(LogStart, name))
}

// End logs the end of a process
func (l *Logger) End(name string) {
	l.log.Debug(fmt.Sprintf(LogEnd, name))
}

// Section logs a section header
func (l *Logger) Section(name string) {
	l.log.Debug(fmt.Sprintf(LogSection, name))
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, args ...any) {
	l.log.Error(msg, append([]any{"error", err}, args...)...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, err error, args ...any) {
	l.log.Warn(msg, append([]any{"error", err}, args...)...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Success logs a success message
func (l *Logger) Success(msg string) {
	l.log.Info("✓ " + msg)
}

// KeyValue logs key-value pairs as structured attributes
func (l *Logger) KeyValue(msg string, pairs ...interface{}) {
	l.log.Info(msg, pairs...)
}

// SetupLogging installs the process-wide slog handler. Production gets JSON
// lines, everything else the human-readable text format.
func SetupLogging(level, env string) {
	slog.SetDefault(slog.New(newHandler(os.Stdout, level, env)))
}

func newHandler(w io.Writer, level, env string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if env == "production" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps a LOG_LEVEL value onto a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
