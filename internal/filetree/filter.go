package filetree

import (
	"path/filepath"
	"strings"
)

// Mode selects which files a navigation tree shows.
type Mode int

const (
	// ModeGeneral shows files whose suffix is in the recognized set.
	ModeGeneral Mode = iota
	// ModeMarkdown shows only files that look like markdown documents.
	ModeMarkdown
)

// DefaultSuffixes is the recognized suffix set for general browsing.
var DefaultSuffixes = []string{
	".md", ".markdown", ".txt",
	".go", ".py", ".rb", ".rs", ".c", ".h", ".cpp", ".hpp", ".java",
	".js", ".ts", ".kt", ".swift", ".sh",
	".html", ".css", ".json", ".xml", ".yaml", ".yml", ".toml",
}

// Filter decides, per filesystem entry, whether it appears in a tree view.
// It is pure: the same inputs always produce the same decision.
type Filter struct {
	mode     Mode
	suffixes map[string]struct{}
	markdown func(name string) bool
}

// NewFilter creates a filter for the given mode and recognized suffix set.
// An empty suffix list falls back to DefaultSuffixes. Markdown
// classification uses LooksLikeMarkdown unless overridden.
func NewFilter(mode Mode, suffixes []string) Filter {
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	set := make(map[string]struct{}, len(suffixes))
	for _, s := range suffixes {
		set[strings.ToLower(s)] = struct{}{}
	}
	return Filter{
		mode:     mode,
		suffixes: set,
		markdown: LooksLikeMarkdown,
	}
}

// WithClassifier returns a copy of the filter using the given markdown
// classifier.
func (f Filter) WithClassifier(classify func(name string) bool) Filter {
	f.markdown = classify
	return f
}

// WithMode returns a copy of the filter in the given mode.
func (f Filter) WithMode(mode Mode) Filter {
	f.mode = mode
	return f
}

// Mode returns the filter's mode.
func (f Filter) Mode() Mode {
	return f.mode
}

// Include reports whether an entry belongs in the tree. Hidden entries are
// always excluded; directories are otherwise always included; files must
// match the mode's rule.
func (f Filter) Include(name string, isDir bool) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	if isDir {
		return true
	}
	if f.mode == ModeMarkdown {
		return f.markdown(name)
	}
	_, ok := f.suffixes[strings.ToLower(filepath.Ext(name))]
	return ok
}

// LooksLikeMarkdown is the default suffix heuristic for markdown documents.
func LooksLikeMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
