package execlog

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Sink is the minimal leveled logging surface consumed by Timer and
// implemented by Logger. charmbracelet's *log.Logger satisfies it
// directly, so callers with their own logger need no adapter.
type Sink interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// Options configures Setup.
//
// Levels are charmbracelet/log level names ("debug", "info", "warn",
// "error", "fatal"); an empty level means "info". An empty Path disables
// the file sink entirely.
type Options struct {
	ConsoleLevel string // minimum severity printed to stderr
	FileLevel    string // minimum severity persisted to Path
	Path         string // log file destination, appended to; empty = no file sink
}

// Logger dispatches every call to all configured sinks. It is a plain
// value intended to be passed explicitly; the package installs no global
// state.
type Logger struct {
	sinks []Sink
	file  *os.File // non-nil only when a file sink was configured
}

// Setup builds a Logger with a console sink on stderr at
// opts.ConsoleLevel and, when opts.Path is non-empty, a logfmt file sink
// at opts.FileLevel appending to that path.
//
// Errors: unknown level names and file open failures are returned wrapped;
// no partial Logger is returned on error.
func Setup(opts Options) (*Logger, error) {
	consoleLevel, err := parseLevel(opts.ConsoleLevel)
	if err != nil {
		return nil, fmt.Errorf("execlog: console level: %w", err)
	}

	console := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           consoleLevel,
	})
	l := &Logger{sinks: []Sink{console}}

	if opts.Path != "" {
		fileLevel, err := parseLevel(opts.FileLevel)
		if err != nil {
			return nil, fmt.Errorf("execlog: file level: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("execlog: open log file: %w", err)
		}
		l.file = f
		l.sinks = append(l.sinks, log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           fileLevel,
			Formatter:       log.LogfmtFormatter,
		}))
	}

	return l, nil
}

// parseLevel resolves a level name, defaulting empty to info.
func parseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(name)
}

// Debug writes a message at DEBUG level to all sinks.
func (l *Logger) Debug(msg any, keyvals ...any) {
	for _, s := range l.sinks {
		s.Debug(msg, keyvals...)
	}
}

// Info writes a message at INFO level to all sinks.
func (l *Logger) Info(msg any, keyvals ...any) {
	for _, s := range l.sinks {
		s.Info(msg, keyvals...)
	}
}

// Warn writes a message at WARN level to all sinks.
func (l *Logger) Warn(msg any, keyvals ...any) {
	for _, s := range l.sinks {
		s.Warn(msg, keyvals...)
	}
}

// Error writes a message at ERROR level to all sinks.
func (l *Logger) Error(msg any, keyvals ...any) {
	for _, s := range l.sinks {
		s.Error(msg, keyvals...)
	}
}

// Close releases the file sink's handle, if one was configured. The
// Logger must not be used after Close.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
