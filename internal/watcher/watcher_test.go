package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitalog.json")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Stop()
	w.Start()

	if err := os.WriteFile(path, []byte(`{"waterEntries":[]}`), 0600); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case ev := <-w.Events:
		if ev.Err != nil {
			t.Errorf("event carried error: %v", ev.Err)
		}
		if filepath.Clean(ev.Path) != filepath.Clean(path) {
			t.Errorf("event path = %s, want %s", ev.Path, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event received after writing the watched file")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vitalog.json")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Stop()
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case ev := <-w.Events:
		t.Errorf("unexpected event for sibling file: %+v", ev)
	case <-time.After(500 * time.Millisecond):
	}
}
