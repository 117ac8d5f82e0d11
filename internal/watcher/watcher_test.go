package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "homework.db")
	w, err := New(db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	tests := []struct {
		path string
		want bool
	}{
		{db, true},
		{db + "-wal", true},
		{db + "-journal", true},
		{db + "-shm", false},
		{filepath.Join(dir, "other.db"), false},
	}
	for _, tt := range tests {
		if got := w.matches(tt.path); got != tt.want {
			t.Errorf("matches(%q) = %v, want %v", filepath.Base(tt.path), got, tt.want)
		}
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "homework.db")
	if err := os.WriteFile(db, nil, 0600); err != nil {
		t.Fatal(err)
	}

	w, err := New(db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(db+"-wal", []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events:
		abs, _ := filepath.Abs(db)
		if ev.Path != abs {
			t.Errorf("event path = %q, want %q", ev.Path, abs)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event within 5s")
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "homework.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Start()
	if err := w.Stop(); err != nil {
		t.Errorf("first Stop() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "homework.db")); err == nil {
		t.Error("New() should fail when the directory does not exist")
	}
}

func TestWatcher_DoneClosedByStop(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "homework.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	select {
	case <-w.Done():
		t.Fatal("Done() closed before Stop")
	default:
	}

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() not closed after Stop")
	}
}
