package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSessionRecordRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chess75-telemetry-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	rec := SessionRecord{
		ID:        "test-1",
		Records:   32,
		MoveToken: "1233",
		Nodes:     4096,
		Depth:     4,
		Elapsed:   150 * time.Millisecond,
		When:      time.Now(),
	}

	if err := store.Record(rec); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := store.Load("test-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.MoveToken != rec.MoveToken || got.Nodes != rec.Nodes || got.Depth != rec.Depth {
		t.Errorf("loaded record = %+v, want %+v", *got, rec)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestDefaultDir(t *testing.T) {
	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir failed: %v", err)
	}
	if dir == "" {
		t.Error("DefaultDir returned empty path")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("telemetry directory was not created: %s", dir)
	}
}
