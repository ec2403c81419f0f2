package storage

import (
	"testing"

	"github.com/ferndev/fern/internal/viewer"
)

func TestHistoryFileRoundTrip(t *testing.T) {
	hf, err := NewHistoryFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistoryFile: %v", err)
	}

	locations := []viewer.Location{
		viewer.PathLocation("/home/user/readme.md"),
		viewer.URLLocation("https://example.com/doc.md"),
		viewer.PathLocation("/home/user/main.go"),
	}
	if err := hf.Save(locations); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := hf.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(locations) {
		t.Fatalf("loaded %d locations, want %d", len(loaded), len(locations))
	}
	for i := range locations {
		if loaded[i] != locations[i] {
			t.Errorf("loaded[%d] = %q (remote %v), want %q (remote %v)",
				i, loaded[i].String(), loaded[i].IsRemote(),
				locations[i].String(), locations[i].IsRemote())
		}
	}
}

func TestHistoryFileMissing(t *testing.T) {
	hf, err := NewHistoryFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistoryFile: %v", err)
	}

	loaded, err := hf.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("loaded %d locations from missing file, want 0", len(loaded))
	}
}

func TestHistoryFileSaveEmpty(t *testing.T) {
	hf, err := NewHistoryFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewHistoryFile: %v", err)
	}
	if err := hf.Save(nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}
	loaded, err := hf.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("loaded %d locations, want 0", len(loaded))
	}
}
