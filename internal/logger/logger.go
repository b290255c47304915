// Package logger provides verbose logging for driverfinder.
//
// Debug, Info, Warn and Section lines are only written after SetVerbose(true)
// (the --verbose flag). Error lines are always written. Multi-line messages,
// such as prompts and raw model replies, are indented under their first line.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is the severity of a log line.
type Level int

// Log levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the tag printed in front of a line.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func fromLogrus(l logrus.Level) Level {
	switch {
	case l >= logrus.DebugLevel:
		return LevelDebug
	case l == logrus.InfoLevel:
		return LevelInfo
	case l == logrus.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// sectionField marks an entry as a phase header.
const sectionField = "section"

// lineFormatter renders "[LEVEL] message" lines and "=== name ===" headers.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if _, ok := e.Data[sectionField]; ok {
		fmt.Fprintf(&b, "\n=== %s ===\n", e.Message)
		return b.Bytes(), nil
	}
	msg := strings.ReplaceAll(strings.TrimRight(e.Message, "\n"), "\n", "\n    ")
	fmt.Fprintf(&b, "[%s] %s\n", fromLogrus(e.Level), msg)
	return b.Bytes(), nil
}

// Logger writes level-tagged lines through logrus.
type Logger struct {
	log *logrus.Logger
}

// New returns a quiet logger writing to w.
func New(w io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.ErrorLevel)
	return &Logger{log: l}
}

// SetVerbose switches between all levels and errors only.
func (l *Logger) SetVerbose(v bool) {
	if v {
		l.log.SetLevel(logrus.DebugLevel)
		return
	}
	l.log.SetLevel(logrus.ErrorLevel)
}

// SetOutput replaces the destination writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.log.IsLevelEnabled(level.logrus())
}

// Logf writes one line at level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.log.Logf(level.logrus(), format, args...)
}

// Section writes a phase header when verbose.
func (l *Logger) Section(name string) {
	l.log.WithField(sectionField, true).Info(name)
}

var std = New(os.Stderr)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) { std.SetVerbose(v) }

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool { return std.Enabled(LevelDebug) }

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
// The TUI discards logs so they do not corrupt the alternate screen.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// Debug logs prompts, replies and other detail.
func Debug(format string, args ...any) { std.Logf(LevelDebug, format, args...) }

// Info logs pipeline progress.
func Info(format string, args ...any) { std.Logf(LevelInfo, format, args...) }

// Warn logs recoverable problems.
func Warn(format string, args ...any) { std.Logf(LevelWarn, format, args...) }

// Error logs regardless of verbose mode.
func Error(format string, args ...any) { std.Logf(LevelError, format, args...) }

// Section prints a section header if verbose mode is enabled.
func Section(name string) { std.Section(name) }
