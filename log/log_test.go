package log

import(
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct{
		In        string
		Expected  slog.Level
		Err       bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _,test := range tests {
		lvl,err := ParseLevel(test.In)
		if lvl != test.Expected || (err != nil) != test.Err {
			t.Errorf("%q: got %v, %v", test.In, lvl, err)
		}
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, slog.LevelInfo)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.With("track", "EWABE").Warn("careful")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message was logged: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown 2"`) || !strings.Contains(out, `"track":"EWABE"`) {
		t.Errorf("missing messages: %s", out)
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Debug("nothing")
	l.Infof("nothing %d", 1)
	if l.With("a", 1) != nil {
		t.Errorf("With on a nil Logger should be nil")
	}
}
