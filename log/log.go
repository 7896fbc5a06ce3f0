// Package log provides the leveled, structured logger used by the pressure
// command. It is a thin wrapper over [log/slog].
package log

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

var DiscardHandler = slog.DiscardHandler

// Logger is the minimal interface for printing log lines.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

type logger struct {
	*slog.Logger
	with  []any
	group string
}

var (
	level         = new(slog.LevelVar)
	defaultLogger = &logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
)

func init() {
	level.Set(slog.LevelWarn)
}

// SetLogLevel sets the minimum level of events that are logged.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the minimum level of events that are logged.
func LogLevel() Level {
	return Level(level.Level())
}

// With adds args as attributes of every event.
func With(args ...any) {
	defaultLogger.Logger = defaultLogger.Logger.With(args...)
	defaultLogger.with = append(defaultLogger.with, args...)
}

// WithGroup qualifies the attributes of every event with name.
func WithGroup(name string) {
	defaultLogger.Logger = defaultLogger.Logger.WithGroup(name)
	defaultLogger.group = name
}

func DefaultLogger() Logger {
	return defaultLogger
}

// SetOutput sets the output of the standard logger, which is where events
// go when no handler has been set.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	setHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetHandler sets the default logger's handler to the one given. With the
// debug build tag, debug events are always passed to the handler.
func SetHandler(h Handler) {
	setHandler(wrapHandler(h))
}

func setHandler(h Handler) {
	l := slog.New(h).With(defaultLogger.with...)
	if defaultLogger.group != "" {
		l = l.WithGroup(defaultLogger.group)
	}
	defaultLogger.Logger = l
}

// Error logs msg at [LevelError] with err as the "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}

// Fatal is [Error] followed by os.Exit(1).
func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Println(v ...any) {
	defaultLogger.Info(fmt.Sprintln(v...))
}

func Printf(format string, v ...any) {
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

func (l *logger) Println(v ...any) {
	l.Info(fmt.Sprintln(v...))
}

func (l *logger) Printf(format string, v ...any) {
	l.Info(fmt.Sprintf(format, v...))
}

type debugLogger struct{}

// DebugLogger returns a [Logger] that logs at [LevelDebug]. Without the debug
// build tag nothing is logged.
func DebugLogger() Logger {
	return debugLogger{}
}
func (debugLogger) Println(v ...any)               { Debug(fmt.Sprintln(v...)) }
func (debugLogger) Printf(format string, v ...any) { Debug(fmt.Sprintf(format, v...)) }

type warnLogger struct{}

// WarnLogger returns a [Logger] that logs at [LevelWarn].
func WarnLogger() Logger {
	return warnLogger{}
}
func (warnLogger) Println(v ...any)               { Warn(fmt.Sprintln(v...)) }
func (warnLogger) Printf(format string, v ...any) { Warn(fmt.Sprintf(format, v...)) }

type errorLogger struct{}

// ErrorLogger returns a [Logger] that logs at [LevelError].
func ErrorLogger() Logger {
	return errorLogger{}
}
func (errorLogger) Println(v ...any)               { defaultLogger.Error(fmt.Sprintln(v...)) }
func (errorLogger) Printf(format string, v ...any) { defaultLogger.Error(fmt.Sprintf(format, v...)) }
