package filetree

import "testing"

func TestFilterHiddenAlwaysExcluded(t *testing.T) {
	for _, mode := range []Mode{ModeGeneral, ModeMarkdown} {
		f := NewFilter(mode, nil)
		if f.Include(".hidden.md", false) {
			t.Errorf("mode %d: .hidden.md should be excluded", mode)
		}
		if f.Include(".git", true) {
			t.Errorf("mode %d: .git directory should be excluded", mode)
		}
	}
}

func TestFilterDirectoriesAlwaysIncluded(t *testing.T) {
	for _, mode := range []Mode{ModeGeneral, ModeMarkdown} {
		f := NewFilter(mode, nil)
		if !f.Include("src", true) {
			t.Errorf("mode %d: visible directory should be included", mode)
		}
	}
}

func TestFilterGeneralMode(t *testing.T) {
	f := NewFilter(ModeGeneral, []string{".go", ".txt"})

	tests := []struct {
		name string
		want bool
	}{
		{"main.go", true},
		{"notes.txt", true},
		{"notes.md", false}, // .md not in the configured set
		{"binary.exe", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		if got := f.Include(tt.name, false); got != tt.want {
			t.Errorf("Include(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFilterGeneralModeDefaultSuffixes(t *testing.T) {
	f := NewFilter(ModeGeneral, nil)
	if !f.Include("notes.md", false) {
		t.Error("notes.md should be included with the default suffix set")
	}
	if !f.Include("main.go", false) {
		t.Error("main.go should be included with the default suffix set")
	}
}

func TestFilterMarkdownMode(t *testing.T) {
	f := NewFilter(ModeMarkdown, nil)

	if !f.Include("notes.md", false) {
		t.Error("notes.md should be included in markdown mode")
	}
	if !f.Include("README.markdown", false) {
		t.Error("README.markdown should be included in markdown mode")
	}
	if f.Include("main.go", false) {
		t.Error("main.go should be excluded in markdown mode")
	}
}

func TestFilterCustomClassifier(t *testing.T) {
	f := NewFilter(ModeMarkdown, nil).WithClassifier(func(name string) bool {
		return name == "special.doc"
	})
	if !f.Include("special.doc", false) {
		t.Error("custom classifier should accept special.doc")
	}
	if f.Include("notes.md", false) {
		t.Error("custom classifier should reject notes.md")
	}
}

func TestFilterIsPure(t *testing.T) {
	f := NewFilter(ModeGeneral, nil)
	first := f.Include("notes.md", false)
	for i := 0; i < 10; i++ {
		if f.Include("notes.md", false) != first {
			t.Fatal("Include is not deterministic")
		}
	}
}
