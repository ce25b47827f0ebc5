package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWriterReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robots.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := (FileWriter{}).WriteFile(context.Background(), path, []byte("new\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(b) != "new\n" {
		t.Fatalf("unexpected content %q", b)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be renamed away, found %d entries", len(entries))
	}
}

func TestFileWriterMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "robots.txt")
	err := (FileWriter{}).WriteFile(context.Background(), path, []byte("x"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestFileWriterCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "robots.txt")
	if err := (FileWriter{}).WriteFile(ctx, path, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no file after canceled write")
	}
}

func TestNewRunIDSortable(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	first, err := NewRunID(now)
	if err != nil {
		t.Fatalf("NewRunID() error = %v", err)
	}
	second, err := NewRunID(now.Add(time.Millisecond))
	if err != nil {
		t.Fatalf("NewRunID() error = %v", err)
	}
	if len(first) != 26 {
		t.Fatalf("expected 26-char ULID, got %q", first)
	}
	if !(first < second) {
		t.Fatalf("expected run ids to sort by time: %q !< %q", first, second)
	}
}
