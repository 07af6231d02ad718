// Package logging is the launcher's log sink. Messages have three
// severities: Debug (shown only when verbose), Info and Important
// (always shown). Each message may be routed to the standard streams,
// a per-run log file and the OS system log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"itw/internal/theme"
)

const prefix = "itw"

// Options configures the sinks of a Logger.
type Options struct {
	Verbose    bool
	StdStreams bool
	File       bool
	System     bool
	Dir        string // log file directory, used when File is set

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// systemSink is the OS log: syslog on POSIX, the Event Log on Windows.
type systemSink interface {
	Info(msg string) error
	Warning(msg string) error
	Close() error
}

var openSystemSink = openPlatformSink

// Logger fans log records out to the configured sinks.
type Logger struct {
	verbose bool
	out     *log.Logger
	err     *log.Logger
	file    *fileSink
	system  systemSink
}

// New builds a Logger. Sinks that cannot be opened are skipped; logging
// never stops the launcher.
func New(opts Options) *Logger {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	l := &Logger{verbose: opts.Verbose}
	if opts.StdStreams {
		level := log.InfoLevel
		if opts.Verbose {
			level = log.DebugLevel
		}
		l.out = newConsole(opts.Stdout, level)
		l.err = newConsole(opts.Stderr, level)
	}
	if opts.File && opts.Dir != "" {
		l.file = newFileSink(opts.Dir, opts.Stderr)
	}
	if opts.System {
		sys, err := openSystemSink()
		if err != nil {
			_, _ = fmt.Fprintln(opts.Stderr, theme.WarningMessage("system log unavailable: "+err.Error()))
		} else {
			l.system = sys
		}
	}
	return l
}

// Discard returns a Logger with no sinks.
func Discard() *Logger {
	return &Logger{}
}

func newConsole(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
	l.SetStyles(theme.LogStyles())
	return l
}

// Verbose reports whether debug messages are emitted.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Debug logs diagnostics visible only in verbose mode.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.verbose {
		return
	}
	if l.out != nil {
		l.out.Debug(msg, keyvals...)
	}
	l.toFile(log.DebugLevel, msg, keyvals)
}

// Info logs a message that is always shown.
func (l *Logger) Info(msg string, keyvals ...any) {
	if l.out != nil {
		l.out.Info(msg, keyvals...)
	}
	l.toFile(log.InfoLevel, msg, keyvals)
	if l.system != nil {
		_ = l.system.Info(flatten(msg, keyvals))
	}
}

// Important logs a user-actionable problem to stderr.
func (l *Logger) Important(msg string, keyvals ...any) {
	if l.err != nil {
		l.err.Warn(msg, keyvals...)
	}
	l.toFile(log.WarnLevel, msg, keyvals)
	if l.system != nil {
		_ = l.system.Warning(flatten(msg, keyvals))
	}
}

// Close releases the system log handle.
func (l *Logger) Close() error {
	if l.system == nil {
		return nil
	}
	return l.system.Close()
}

func (l *Logger) toFile(level log.Level, msg string, keyvals []any) {
	if l.file != nil {
		l.file.write(level, msg, keyvals)
	}
}

// flatten renders a record as a single line for sinks without fields.
func flatten(msg string, keyvals []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(keyvals); i += 2 {
		b.WriteByte(' ')
		if i+1 < len(keyvals) {
			fmt.Fprintf(&b, "%v=%v", keyvals[i], keyvals[i+1])
		} else {
			fmt.Fprintf(&b, "%v", keyvals[i])
		}
	}
	return b.String()
}
