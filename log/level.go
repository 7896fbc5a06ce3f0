package log

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
//
// Level shares its numbering with [slog.Level], plus [LevelDisabled]
// which no event reaches.
type Level slog.Level

// Names for common levels.
const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns a name for the level, e.g. "WARN" or "DISABLED".
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}

	return slog.Level(l).String()
}

// MarshalJSON implements [encoding/json.Marshaler]
// by quoting the output of [Level.String].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
// It accepts any string accepted by [Level.UnmarshalText].
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}

// AppendText implements [encoding.TextAppender]
// by calling [Level.String].
func (l Level) AppendText(b []byte) ([]byte, error) {
	return append(b, l.String()...), nil
}

// MarshalText implements [encoding.TextMarshaler]
// by calling [Level.AppendText].
func (l Level) MarshalText() ([]byte, error) {
	return l.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts any string produced by [Level.MarshalText], ignoring case,
// as well as "disable" and "false" for [LevelDisabled].
func (l *Level) UnmarshalText(data []byte) (err error) {
	switch string(bytes.ToLower(bytes.TrimSpace(data))) {
	case "disable", "disabled", "false", "off":
		*l = LevelDisabled
	case "warning":
		*l = LevelWarn
	default:
		err = (*slog.Level)(l).UnmarshalText(data)
	}

	return
}

// Level returns the receiver as a [slog.Level].
// It implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// LevelFlag implements the interfaces needed to be used as a command-line flag.
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return (Level)(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(strings.TrimSpace(s)))
}

func (lf *LevelFlag) Get() any {
	return (Level)(*lf)
}

func (lf *LevelFlag) Type() string {
	return "level"
}
