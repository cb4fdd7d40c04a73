package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{".JPG"}, dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "frame-001.jpg")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Ext(name) != ".jpg" {
				t.Fatalf("unexpected event for %s", name)
			}
			if filepath.Base(name) == "frame-001.jpg" {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-timeout:
			t.Fatalf("no event for %s", target)
		}
	}
}

func TestWatcherMissingDir(t *testing.T) {
	if _, err := New(nil, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := New(nil, t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestSettler(t *testing.T) {
	s := Settler{Quiet: 250 * time.Millisecond}
	t0 := time.Unix(1000, 0)

	if s.Ready(t0) {
		t.Fatalf("idle settler should not be ready")
	}
	s.Notify(t0)
	s.Notify(t0.Add(100 * time.Millisecond))
	if s.Ready(t0.Add(300 * time.Millisecond)) {
		t.Fatalf("ready before the quiet period elapsed")
	}
	if !s.Ready(t0.Add(350 * time.Millisecond)) {
		t.Fatalf("expected ready after quiet period")
	}
	if s.Ready(t0.Add(time.Second)) {
		t.Fatalf("ready should fire once per burst")
	}
}
