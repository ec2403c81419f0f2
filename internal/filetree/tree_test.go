package filetree

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.md"))
	writeFile(t, filepath.Join(root, "main.go"))
	writeFile(t, filepath.Join(root, ".hidden.md"))
	writeFile(t, filepath.Join(root, "image.png"))
	if err := os.MkdirAll(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "docs", "guide.md"))
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	return root
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestTreeRowsGeneralMode(t *testing.T) {
	root := fixture(t)
	tr := NewTree(root, NewFilter(ModeGeneral, nil))

	got := names(tr.Rows())
	want := []string{"docs", "main.go", "readme.md"}
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rows[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTreeRowsMarkdownMode(t *testing.T) {
	root := fixture(t)
	tr := NewTree(root, NewFilter(ModeMarkdown, nil))

	got := names(tr.Rows())
	want := []string{"docs", "readme.md"}
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestTreeExpandCollapse(t *testing.T) {
	root := fixture(t)
	tr := NewTree(root, NewFilter(ModeGeneral, nil))
	docs := filepath.Join(root, "docs")

	tr.ToggleExpand(docs)
	rows := tr.Rows()
	found := false
	for _, r := range rows {
		if r.Name == "guide.md" {
			found = true
			if r.Depth != 1 {
				t.Errorf("guide.md depth = %d, want 1", r.Depth)
			}
		}
	}
	if !found {
		t.Fatal("expanded docs should reveal guide.md")
	}

	tr.ToggleExpand(docs)
	for _, r := range tr.Rows() {
		if r.Name == "guide.md" {
			t.Fatal("collapsed docs should hide guide.md")
		}
	}
}

func TestTreeReflectsDiskChanges(t *testing.T) {
	root := fixture(t)
	tr := NewTree(root, NewFilter(ModeGeneral, nil))

	before := len(tr.Rows())
	writeFile(t, filepath.Join(root, "new.md"))
	after := len(tr.Rows())
	if after != before+1 {
		t.Errorf("rows = %d after adding a file, want %d", after, before+1)
	}
}

func TestTreeMissingRootYieldsNoRows(t *testing.T) {
	tr := NewTree(filepath.Join(t.TempDir(), "does-not-exist"), NewFilter(ModeGeneral, nil))
	if rows := tr.Rows(); len(rows) != 0 {
		t.Errorf("rows = %v for unreadable root, want none", names(rows))
	}
}

func TestTreeSetRootResetsExpansion(t *testing.T) {
	root := fixture(t)
	tr := NewTree(root, NewFilter(ModeGeneral, nil))
	docs := filepath.Join(root, "docs")
	tr.ToggleExpand(docs)

	tr.SetRoot(t.TempDir())
	if tr.IsExpanded(docs) {
		t.Error("SetRoot should reset expansion state")
	}
}
