package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Kind classifies how a location's content is displayed.
type Kind int

const (
	KindMarkdown Kind = iota
	KindText
	KindCode
	KindExternal // handed off to the OS default opener
)

// codeSuffixes are source files rendered with syntax highlighting.
var codeSuffixes = map[string]struct{}{
	".go": {}, ".py": {}, ".rb": {}, ".rs": {}, ".c": {}, ".h": {},
	".cpp": {}, ".hpp": {}, ".java": {}, ".js": {}, ".ts": {}, ".kt": {},
	".swift": {}, ".sh": {}, ".html": {}, ".css": {}, ".json": {},
	".xml": {}, ".yaml": {}, ".yml": {}, ".toml": {},
}

// Classify decides the display kind for a filename.
func Classify(name string) Kind {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".md", ".markdown":
		return KindMarkdown
	case ".txt":
		return KindText
	default:
		if _, ok := codeSuffixes[ext]; ok {
			return KindCode
		}
		return KindExternal
	}
}

// Document is terminal-ready content for a location.
type Document struct {
	Location Location
	Title    string
	Content  string
}

// Cached glamour renderer; recreating one per render is expensive.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	rendererMu          sync.Mutex
)

// Renderer turns locations into Documents, caching rendered output for
// instant back/forward navigation.
type Renderer struct {
	cache       *lru.Cache[string, *Document]
	chromaStyle string
}

// NewRenderer creates a renderer using the given chroma style name.
func NewRenderer(chromaStyle string) *Renderer {
	cache, _ := lru.New[string, *Document](64)
	return &Renderer{
		cache:       cache,
		chromaStyle: chromaStyle,
	}
}

// RenderFile reads and renders a local file. Read failures are returned as
// errors for the caller to display inline; they are never fatal.
func (r *Renderer) RenderFile(loc Location, width int) (*Document, error) {
	key := cacheKey(loc, width)
	if doc, ok := r.cache.Get(key); ok {
		return doc, nil
	}

	path := loc.String()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var content string
	switch Classify(path) {
	case KindMarkdown:
		content, err = RenderMarkdown(string(data), width)
		if err != nil {
			content = string(data)
		}
	case KindCode:
		content, err = r.highlight(string(data), path)
		if err != nil {
			content = string(data)
		}
	default:
		content = string(data)
	}

	doc := &Document{
		Location: loc,
		Title:    filepath.Base(path),
		Content:  content,
	}
	r.cache.Add(key, doc)
	return doc, nil
}

// Invalidate drops any cached rendering of a location, so the next render
// reads from disk. Used by reload and the filesystem-change path.
func (r *Renderer) Invalidate(loc Location) {
	for _, key := range r.cache.Keys() {
		if strings.HasPrefix(key, loc.String()+"\x00") {
			r.cache.Remove(key)
		}
	}
}

// Cache stores an externally produced document (e.g. a fetched remote page).
func (r *Renderer) Cache(loc Location, width int, doc *Document) {
	r.cache.Add(cacheKey(loc, width), doc)
}

// Cached returns a previously rendered document, if present.
func (r *Renderer) Cached(loc Location, width int) (*Document, bool) {
	return r.cache.Get(cacheKey(loc, width))
}

func cacheKey(loc Location, width int) string {
	return fmt.Sprintf("%s\x00%d", loc.String(), width)
}

// RenderMarkdown renders markdown into styled terminal text, reusing the
// glamour renderer while the width is stable.
func RenderMarkdown(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 4
	if contentWidth > 100 {
		contentWidth = 100
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	rendererMu.Lock()
	defer rendererMu.Unlock()

	if cachedRenderer == nil || cachedRendererWidth != contentWidth {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(contentWidth),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = renderer
		cachedRendererWidth = contentWidth
	}

	return cachedRenderer.Render(markdown)
}

// highlight renders source code with chroma's terminal formatter.
func (r *Renderer) highlight(source, path string) (string, error) {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(r.chromaStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", path, err)
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", path, err)
	}
	return sb.String(), nil
}

// OpenExternal hands a file to the OS default opener.
func OpenExternal(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s externally: %w", path, err)
	}
	// Detach; the opener owns the file from here.
	go cmd.Wait()
	return nil
}
