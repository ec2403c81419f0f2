package viewer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"readme.md", KindMarkdown},
		{"CHANGELOG.markdown", KindMarkdown},
		{"notes.txt", KindText},
		{"main.go", KindCode},
		{"style.CSS", KindCode},
		{"photo.png", KindExternal},
		{"archive.tar.gz", KindExternal},
		{"Makefile", KindExternal},
	}
	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRenderFileMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title\n\nSome *styled* text.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer("monokai")
	doc, err := r.RenderFile(PathLocation(path), 80)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if doc.Content == "" {
		t.Error("rendered markdown should not be empty")
	}
	if doc.Title != "doc.md" {
		t.Errorf("Title = %q, want doc.md", doc.Title)
	}
}

func TestRenderFileCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	src := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer("monokai")
	doc, err := r.RenderFile(PathLocation(path), 80)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if doc.Content == "" {
		t.Error("highlighted code should not be empty")
	}
}

func TestRenderFilePlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("plain content"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer("monokai")
	doc, err := r.RenderFile(PathLocation(path), 80)
	if err != nil {
		t.Fatalf("RenderFile: %v", err)
	}
	if doc.Content != "plain content" {
		t.Errorf("Content = %q, want the raw text", doc.Content)
	}
}

func TestRenderFileMissing(t *testing.T) {
	r := NewRenderer("monokai")
	if _, err := r.RenderFile(PathLocation(filepath.Join(t.TempDir(), "nope.md")), 80); err == nil {
		t.Fatal("RenderFile on a missing file should fail")
	}
}

func TestRendererCacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("before"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer("monokai")
	loc := PathLocation(path)
	if _, err := r.RenderFile(loc, 80); err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Cached(loc, 80); !ok {
		t.Fatal("document should be cached after render")
	}

	if err := os.WriteFile(path, []byte("after"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Cached content survives until invalidated.
	doc, err := r.RenderFile(loc, 80)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Content != "before" {
		t.Errorf("Content = %q before invalidation, want cached value", doc.Content)
	}

	r.Invalidate(loc)
	doc, err = r.RenderFile(loc, 80)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Content != "after" {
		t.Errorf("Content = %q after invalidation, want fresh value", doc.Content)
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	html := `<div><h2>Section</h2><p>Hello world.</p><ul><li>one</li><li>two</li></ul>` +
		`<pre><code class="language-go">func main() {}</code></pre></div>`

	md := htmlToMarkdown("Doc", html)
	for _, want := range []string{"# Doc", "## Section", "Hello world.", "- one", "```go"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
