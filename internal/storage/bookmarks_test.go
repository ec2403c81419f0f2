package storage

import (
	"testing"

	"github.com/ferndev/fern/internal/viewer"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBookmarkAddHasRemove(t *testing.T) {
	bs := NewBookmarkStore(openTestDB(t))
	loc := viewer.PathLocation("/home/user/readme.md")

	if bs.Has(loc) {
		t.Fatal("fresh store should not contain the location")
	}
	if !bs.Add(loc, "Readme") {
		t.Fatal("Add failed")
	}
	if !bs.Has(loc) {
		t.Error("Has should report the bookmarked location")
	}
	if bs.Count() != 1 {
		t.Errorf("Count = %d, want 1", bs.Count())
	}

	// Duplicate add is a no-op.
	bs.Add(loc, "Readme")
	if bs.Count() != 1 {
		t.Errorf("Count = %d after duplicate Add, want 1", bs.Count())
	}

	if !bs.Remove(loc) {
		t.Error("Remove should report success")
	}
	if bs.Remove(loc) {
		t.Error("Remove of an absent location should report failure")
	}
	if bs.Has(loc) {
		t.Error("removed location should not be present")
	}
}

func TestBookmarkList(t *testing.T) {
	bs := NewBookmarkStore(openTestDB(t))
	bs.Add(viewer.PathLocation("/a.md"), "A")
	bs.Add(viewer.URLLocation("https://example.com/b.md"), "B")

	list := bs.List()
	if len(list) != 2 {
		t.Fatalf("List returned %d bookmarks, want 2", len(list))
	}
	// Newest first.
	if list[0].Title != "B" {
		t.Errorf("list[0].Title = %q, want B", list[0].Title)
	}
	if !list[0].Location.IsRemote() {
		t.Error("remote bookmark should round-trip as remote")
	}
}

func TestRenderBookmarks(t *testing.T) {
	out := RenderBookmarks(nil)
	if out == "" {
		t.Error("empty bookmark list should still render a header")
	}

	out = RenderBookmarks([]Bookmark{
		{Title: "Readme", Location: viewer.PathLocation("/readme.md")},
	})
	if out == "" {
		t.Fatal("rendered bookmarks should not be empty")
	}
}
