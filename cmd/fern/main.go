package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ferndev/fern/internal/app"
	"github.com/ferndev/fern/internal/storage"
	"github.com/ferndev/fern/internal/theme"
)

var (
	version = "0.1.0"
)

func main() {
	var (
		themeName    string
		markdownOnly bool
		showVersion  bool
	)

	flag.StringVar(&themeName, "theme", "", "color theme (default, gruvbox, nord, dracula)")
	flag.BoolVar(&markdownOnly, "markdown", false, "show only markdown files in the tree")
	flag.BoolVar(&showVersion, "version", false, "show version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fern - a terminal markdown and file viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: fern [flags] [path or url]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fern                          # browse the current directory\n")
		fmt.Fprintf(os.Stderr, "  fern README.md                # open a file\n")
		fmt.Fprintf(os.Stderr, "  fern ~/notes                  # browse a directory\n")
		fmt.Fprintf(os.Stderr, "  fern https://example.com/a.md # open a remote document\n")
		fmt.Fprintf(os.Stderr, "  fern --theme gruvbox          # use the gruvbox theme\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("fern %s\n", version)
		os.Exit(0)
	}

	cfg, err := storage.LoadConfig()
	if err != nil {
		c := storage.DefaultConfig()
		cfg = &c
	}
	if markdownOnly {
		cfg.MarkdownOnly = true
	}

	// The flag wins over the persisted theme.
	name := cfg.Theme
	if themeName != "" {
		name = themeName
	}
	if name != "" && !theme.Set(name) {
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\nAvailable: %s\n",
			name, strings.Join(theme.List(), ", "))
		os.Exit(1)
	}

	root, start := resolveArgs(cfg, flag.Args())

	m := app.New(cfg, root, start)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveArgs turns the optional positional argument into a tree root and a
// startup location. A directory argument becomes the root; a file or URL
// argument opens on launch with the root unchanged.
func resolveArgs(cfg *storage.Config, args []string) (root, start string) {
	root = cfg.Root
	if root == "" {
		root, _ = os.Getwd()
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		root, _ = os.Getwd()
	}

	if len(args) == 0 {
		return root, ""
	}

	arg := args[0]
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return root, arg
	}

	path := arg
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path, ""
	}
	return root, path
}
