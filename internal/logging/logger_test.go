package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	j := NewJournal()
	logger, err := New("", j)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("should not be recorded")

	if j.Len() != 0 {
		t.Errorf("journal has %d entries, want 0", j.Len())
	}
}

func TestNew_EnvLevel(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	j := NewJournal()
	logger, err := New("", j)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept", zap.String("field", "value"))

	var out bytes.Buffer
	if err := j.Flush(&out); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	got := out.String()
	if strings.Contains(got, "dropped") {
		t.Errorf("info entry written at warn level: %q", got)
	}
	if !strings.Contains(got, "kept") || !strings.Contains(got, "value") {
		t.Errorf("warn entry missing: %q", got)
	}
	if !strings.Contains(got, "session") {
		t.Errorf("session field missing: %q", got)
	}
}

func TestNew_RequiresJournal(t *testing.T) {
	if _, err := New("debug", nil); err == nil {
		t.Error("New() with nil journal should fail")
	}
}

func TestJournal_FlushOrderAndReset(t *testing.T) {
	j := NewJournal()
	j.Write([]byte("one\n"))
	j.Write([]byte("two\n"))

	var out bytes.Buffer
	if err := j.Flush(&out); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.String() != "one\ntwo\n" {
		t.Errorf("Flush() wrote %q", out.String())
	}
	if j.Len() != 0 {
		t.Errorf("journal not emptied, %d entries left", j.Len())
	}

	out.Reset()
	if err := j.Flush(&out); err != nil || out.Len() != 0 {
		t.Errorf("second Flush() = %q, %v", out.String(), err)
	}
}

func TestJournal_WriteCopies(t *testing.T) {
	j := NewJournal()
	buf := []byte("original")
	j.Write(buf)
	copy(buf, "mutated!")

	var out bytes.Buffer
	j.Flush(&out)
	if out.String() != "original" {
		t.Errorf("journal aliased caller buffer: %q", out.String())
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestJournal_FlushKeepsUnwritten(t *testing.T) {
	j := NewJournal()
	j.Write([]byte("a"))
	j.Write([]byte("b"))
	j.Write([]byte("c"))

	if err := j.Flush(&failingWriter{after: 1}); err == nil {
		t.Fatal("Flush() should fail")
	}
	if j.Len() != 2 {
		t.Errorf("Len() = %d, want 2", j.Len())
	}
}
