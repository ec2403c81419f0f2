package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherNotifiesOnChange(t *testing.T) {
	root := t.TempDir()

	w := New()
	if err := w.Start(root); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(root, "note.md"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no notification after file creation")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	root := t.TempDir()

	w := New()
	w.debounce = 100 * time.Millisecond
	if err := w.Start(root); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 5; i++ {
		name := filepath.Join(root, "f"+string(rune('a'+i))+".md")
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no notification after burst")
	}

	// The burst should have collapsed; allow the debounce window to drain
	// and verify at most one further notification is pending.
	time.Sleep(300 * time.Millisecond)
	drained := 0
	for {
		select {
		case <-w.Events():
			drained++
		default:
			if drained > 1 {
				t.Errorf("burst produced %d extra notifications, want at most 1", drained)
			}
			return
		}
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w := New()
	if err := w.Stop(); err != nil {
		t.Errorf("Stop before Start: %v", err)
	}

	if err := w.Start(t.TempDir()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

func TestWatcherStartMissingRoot(t *testing.T) {
	w := New()
	if err := w.Start(filepath.Join(t.TempDir(), "nope")); err == nil {
		w.Stop()
		t.Fatal("Start on a missing root should fail")
	}
}

func TestWatcherSeesNewSubdirectories(t *testing.T) {
	root := t.TempDir()

	w := New()
	w.debounce = 100 * time.Millisecond
	if err := w.Start(root); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no notification for new directory")
	}

	// Give the watch registration a moment, then change inside the new dir.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(sub, "deep.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no notification for change inside new directory")
	}
}
