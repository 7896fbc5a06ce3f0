package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelText(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
		{"disabled", LevelDisabled},
		{"false", LevelDisabled},
	}
	for _, tt := range tests {
		var l Level
		if err := l.UnmarshalText([]byte(tt.input)); err != nil {
			t.Errorf("%q: Error %v", tt.input, err)
		} else if l != tt.want {
			t.Errorf("%q: Wanted %v, got %v", tt.input, tt.want, l)
		}
	}
	var l Level
	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("loud: Wanted error")
	}
	if s := LevelDisabled.String(); s != "DISABLED" {
		t.Errorf("Wanted DISABLED, got %s", s)
	}
}

func TestLevelJSON(t *testing.T) {
	b, err := json.Marshal(LevelWarn)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"WARN"` {
		t.Errorf(`Wanted "WARN", got %s`, b)
	}
	var l Level
	if err = json.Unmarshal([]byte(`"off"`), &l); err != nil || l != LevelDisabled {
		t.Errorf("Wanted DISABLED, got %v (%v)", l, err)
	}
}

func TestSetLogLevel(t *testing.T) {
	old := LogLevel()
	t.Cleanup(func() {
		SetLogLevel(old)
		SetHandler(DiscardHandler)
	})

	var buf bytes.Buffer
	SetTextHandler(&buf)
	SetLogLevel(LevelWarn)

	Info("hidden")
	Warn("shown", "unit", "bar")
	Error("failed", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Wanted info event to be dropped, got %q", out)
	}
	if !strings.Contains(out, "msg=shown unit=bar") {
		t.Errorf("Wanted warn event, got %q", out)
	}
	if !strings.Contains(out, "level=ERROR msg=failed") {
		t.Errorf("Wanted error event, got %q", out)
	}
}
