package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/theme"
)

// DocViewport wraps bubbles/viewport with scroll info and a welcome screen.
type DocViewport struct {
	viewport   viewport.Model
	ready      bool
	totalLines int
	contentSet bool
}

// NewDocViewport creates a new viewport (dimensions set on first WindowSizeMsg).
func NewDocViewport() DocViewport {
	return DocViewport{}
}

// SetSize updates the viewport dimensions.
func (dv *DocViewport) SetSize(width, height int) {
	if !dv.ready {
		dv.viewport = viewport.New(width, height)
		dv.viewport.MouseWheelEnabled = true
		dv.viewport.MouseWheelDelta = 3
		dv.ready = true
	} else {
		dv.viewport.Width = width
		dv.viewport.Height = height
	}
}

// SetContent replaces the viewport content and scrolls to the top.
func (dv *DocViewport) SetContent(content string) {
	if !dv.ready {
		return
	}
	dv.viewport.SetContent(content)
	dv.totalLines = strings.Count(content, "\n") + 1
	dv.contentSet = true
	dv.viewport.GotoTop()
}

// SetContentKeepOffset replaces the content without resetting the scroll
// position. Used when a watched file changes under the reader.
func (dv *DocViewport) SetContentKeepOffset(content string) {
	if !dv.ready {
		return
	}
	offset := dv.viewport.YOffset
	dv.viewport.SetContent(content)
	dv.totalLines = strings.Count(content, "\n") + 1
	dv.contentSet = true
	dv.viewport.SetYOffset(offset)
}

// Update forwards messages to the viewport.
func (dv *DocViewport) Update(msg tea.Msg) (*DocViewport, tea.Cmd) {
	if !dv.ready {
		return dv, nil
	}
	var cmd tea.Cmd
	dv.viewport, cmd = dv.viewport.Update(msg)
	return dv, cmd
}

// View renders the viewport.
func (dv *DocViewport) View() string {
	if !dv.ready {
		return "\n  Initializing..."
	}
	if !dv.contentSet {
		return dv.renderWelcome()
	}
	return dv.viewport.View()
}

// ScrollPercent returns the scroll percentage.
func (dv *DocViewport) ScrollPercent() float64 {
	if !dv.ready {
		return 0
	}
	return dv.viewport.ScrollPercent()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (dv *DocViewport) ScrollInfo() string {
	pct := dv.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// HalfPageDown scrolls down half a page.
func (dv *DocViewport) HalfPageDown() {
	if dv.ready {
		dv.viewport.HalfViewDown()
	}
}

// HalfPageUp scrolls up half a page.
func (dv *DocViewport) HalfPageUp() {
	if dv.ready {
		dv.viewport.HalfViewUp()
	}
}

// LineDown scrolls down one line.
func (dv *DocViewport) LineDown(n int) {
	if dv.ready {
		dv.viewport.LineDown(n)
	}
}

// LineUp scrolls up one line.
func (dv *DocViewport) LineUp(n int) {
	if dv.ready {
		dv.viewport.LineUp(n)
	}
}

// GotoTop scrolls to the top.
func (dv *DocViewport) GotoTop() {
	if dv.ready {
		dv.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (dv *DocViewport) GotoBottom() {
	if dv.ready {
		dv.viewport.GotoBottom()
	}
}

// Ready reports whether the viewport has been initialized.
func (dv *DocViewport) Ready() bool {
	return dv.ready
}

// Width returns the viewport width.
func (dv *DocViewport) Width() int {
	if !dv.ready {
		return 0
	}
	return dv.viewport.Width
}

// Height returns the viewport height.
func (dv *DocViewport) Height() int {
	if !dv.ready {
		return 0
	}
	return dv.viewport.Height
}

func (dv *DocViewport) renderWelcome() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	logo := `
  🌿  __
     / _| ___ _ __ _ __
    | |_ / _ \ '__| '_ \
    |  _|  __/ |  | | | |
    |_|  \___|_|  |_| |_|
`

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(logo))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("  A terminal markdown and file viewer"))
	sb.WriteString("\n\n")
	sb.WriteString(accentStyle.Render("  ⌨ Quick Start"))
	sb.WriteString("\n\n")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"  Enter", "Open the selected file"},
		{"  o", "Open a path or URL"},
		{"  H / L", "Go back / forward"},
		{"  j / k", "Scroll down / up"},
		{"  gg / G", "Top / bottom of document"},
		{"  Ctrl+d/u", "Half page down / up"},
		{"  Ctrl+n", "Toggle file tree"},
		{"  Ctrl+h", "Toggle history panel"},
		{"  m", "Markdown-only filter"},
		{"  B", "Bookmark current document"},
		{"  :", "Command mode"},
		{"  ?", "Show all keybindings"},
		{"  q", "Quit"},
	}

	for _, s := range shortcuts {
		sb.WriteString(keyStyle.Render(fmt.Sprintf("  %-14s", s.key)))
		sb.WriteString(descStyle.Render(s.desc))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("  Select a file in the tree or press 'o' to open a path"))
	sb.WriteString("\n")

	return sb.String()
}
