package filetree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Row is one visible entry in the flattened tree view.
type Row struct {
	Name     string
	Path     string
	IsDir    bool
	Depth    int
	Expanded bool
}

// Tree presents a filtered view of a directory. Listings are read from disk
// on every Rows call, so a rebuild after a filesystem change is always
// current. Expansion state is tracked per directory path.
type Tree struct {
	root     string
	filter   Filter
	expanded map[string]bool
}

// NewTree creates a tree rooted at the given directory.
func NewTree(root string, filter Filter) *Tree {
	return &Tree{
		root:     root,
		filter:   filter,
		expanded: make(map[string]bool),
	}
}

// Root returns the root directory.
func (t *Tree) Root() string {
	return t.root
}

// SetRoot changes the root directory and resets expansion state.
func (t *Tree) SetRoot(root string) {
	t.root = root
	t.expanded = make(map[string]bool)
}

// Filter returns the active filter.
func (t *Tree) Filter() Filter {
	return t.filter
}

// SetFilter replaces the active filter.
func (t *Tree) SetFilter(f Filter) {
	t.filter = f
}

// ToggleExpand flips the expansion state of a directory.
func (t *Tree) ToggleExpand(path string) {
	t.expanded[path] = !t.expanded[path]
}

// IsExpanded reports whether a directory is expanded.
func (t *Tree) IsExpanded(path string) bool {
	return t.expanded[path]
}

// Rows walks the tree from disk and returns the visible entries in display
// order: the root's children, descending into expanded directories.
func (t *Tree) Rows() []Row {
	var rows []Row
	t.walk(t.root, 0, &rows)
	return rows
}

func (t *Tree) walk(dir string, depth int, rows *[]Row) {
	for _, e := range t.list(dir) {
		path := filepath.Join(dir, e.Name())
		row := Row{
			Name:  e.Name(),
			Path:  path,
			IsDir: e.IsDir(),
			Depth: depth,
		}
		if e.IsDir() {
			row.Expanded = t.expanded[path]
		}
		*rows = append(*rows, row)
		if row.Expanded {
			t.walk(path, depth+1, rows)
		}
	}
}

// list reads a directory, applies the filter, and sorts directories first.
// An unreadable directory contributes zero entries.
func (t *Tree) list(dir string) []os.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	filtered := entries[:0]
	for _, e := range entries {
		if t.filter.Include(e.Name(), e.IsDir()) {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].IsDir() != filtered[j].IsDir() {
			return filtered[i].IsDir()
		}
		return strings.ToLower(filtered[i].Name()) < strings.ToLower(filtered[j].Name())
	})

	return filtered
}
