package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLevelWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, defaultLevels, 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchLevels(path)
	if err != nil {
		t.Fatalf("WatchLevels: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("unrelated"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if changed, err := w.Poll(); changed || err != nil {
		t.Fatalf("Poll after unrelated write = %v, %v", changed, err)
	}

	if err := os.WriteFile(path, defaultLevels, 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		changed, err := w.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if changed {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("no change reported for the watched file")
}

func TestLevelWatcherMissingDir(t *testing.T) {
	if _, err := WatchLevels(filepath.Join(t.TempDir(), "missing", "levels.yaml")); err == nil {
		t.Error("WatchLevels on a missing directory succeeded")
	}
}

func TestLevelWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, defaultLevels, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchLevels(path)
	if err != nil {
		t.Fatalf("WatchLevels: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if err := os.WriteFile(path, defaultLevels, 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if changed, err := w.Poll(); changed || err != nil {
		t.Errorf("Poll after Close = %v, %v", changed, err)
	}
}
