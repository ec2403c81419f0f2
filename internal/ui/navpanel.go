package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/filetree"
	"github.com/ferndev/fern/internal/theme"
)

// NavPanel displays the directory tree with vim-style cursor navigation.
type NavPanel struct {
	rows     []filetree.Row
	cursor   int
	offset   int // scroll offset for visible window
	width    int
	height   int
	visible  bool
	lastGKey bool // for gg detection within the panel
}

// NewNavPanel creates a new navigation panel, visible by default.
func NewNavPanel() NavPanel {
	return NavPanel{visible: true}
}

// SetRows replaces the displayed rows. The cursor stays on the same path
// when it still exists; otherwise it is clamped.
func (np *NavPanel) SetRows(rows []filetree.Row) {
	var selected string
	if np.cursor >= 0 && np.cursor < len(np.rows) {
		selected = np.rows[np.cursor].Path
	}

	np.rows = rows

	if selected != "" {
		for i, r := range rows {
			if r.Path == selected {
				np.cursor = i
				np.ensureVisible()
				return
			}
		}
	}
	if np.cursor >= len(rows) {
		np.cursor = len(rows) - 1
	}
	if np.cursor < 0 {
		np.cursor = 0
	}
	np.ensureVisible()
}

// SetSize updates the panel dimensions.
func (np *NavPanel) SetSize(w, h int) {
	np.width = w
	np.height = h
	np.ensureVisible()
}

// Width returns the panel width.
func (np *NavPanel) Width() int {
	return np.width
}

// Show makes the panel visible.
func (np *NavPanel) Show() {
	np.visible = true
	np.lastGKey = false
}

// Hide closes the panel.
func (np *NavPanel) Hide() {
	np.visible = false
	np.lastGKey = false
}

// IsVisible reports whether the panel is shown.
func (np *NavPanel) IsVisible() bool {
	return np.visible
}

// Toggle switches visibility.
func (np *NavPanel) Toggle() {
	if np.visible {
		np.Hide()
	} else {
		np.Show()
	}
}

// CursorUp moves the cursor up one row.
func (np *NavPanel) CursorUp() {
	np.lastGKey = false
	if np.cursor > 0 {
		np.cursor--
		np.ensureVisible()
	}
}

// CursorDown moves the cursor down one row.
func (np *NavPanel) CursorDown() {
	np.lastGKey = false
	if np.cursor < len(np.rows)-1 {
		np.cursor++
		np.ensureVisible()
	}
}

// GotoTop moves to the first row.
func (np *NavPanel) GotoTop() {
	np.lastGKey = false
	np.cursor = 0
	np.offset = 0
}

// GotoBottom moves to the last row.
func (np *NavPanel) GotoBottom() {
	np.lastGKey = false
	if len(np.rows) > 0 {
		np.cursor = len(np.rows) - 1
		np.ensureVisible()
	}
}

// HalfPageDown moves the cursor down half a page.
func (np *NavPanel) HalfPageDown() {
	np.lastGKey = false
	np.cursor += np.visibleCount() / 2
	if np.cursor >= len(np.rows) {
		np.cursor = len(np.rows) - 1
	}
	if np.cursor < 0 {
		np.cursor = 0
	}
	np.ensureVisible()
}

// HalfPageUp moves the cursor up half a page.
func (np *NavPanel) HalfPageUp() {
	np.lastGKey = false
	np.cursor -= np.visibleCount() / 2
	if np.cursor < 0 {
		np.cursor = 0
	}
	np.ensureVisible()
}

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (np *NavPanel) HandleGKey() bool {
	if np.lastGKey {
		np.GotoTop()
		return true
	}
	np.lastGKey = true
	return false
}

// ResetGKey resets the g key state (called on any non-g key press).
func (np *NavPanel) ResetGKey() {
	np.lastGKey = false
}

// SelectedRow returns the row at the cursor, or nil if the panel is empty.
func (np *NavPanel) SelectedRow() *filetree.Row {
	if len(np.rows) == 0 || np.cursor < 0 || np.cursor >= len(np.rows) {
		return nil
	}
	r := np.rows[np.cursor]
	return &r
}

// visibleCount returns how many rows fit in the visible area.
func (np *NavPanel) visibleCount() int {
	// 2 lines for the header.
	available := np.height - 2
	if available < 1 {
		return 1
	}
	return available
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (np *NavPanel) ensureVisible() {
	visible := np.visibleCount()
	if np.cursor < np.offset {
		np.offset = np.cursor
	}
	if np.cursor >= np.offset+visible {
		np.offset = np.cursor - visible + 1
	}
	if np.offset < 0 {
		np.offset = 0
	}
}

// View renders the navigation panel. The focused flag controls the header
// highlight so the user can tell which pane has the keyboard.
func (np *NavPanel) View(rootName string, focused bool) string {
	if !np.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(np.width).
		Height(np.height)

	headerColor := t.TextDim
	if focused {
		headerColor = t.Primary
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(headerColor).
		Background(t.Surface).
		Width(np.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true).
		Width(np.width)

	dirStyle := lipgloss.NewStyle().
		Foreground(t.TreeDir).
		Width(np.width)

	fileStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(np.width)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	title := rootName
	if title == "" {
		title = "Files"
	}
	sb.WriteString(titleStyle.Render("🌿 " + truncate(title, np.width-4)))
	sb.WriteString("\n")

	sepWidth := np.width
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(np.rows) == 0 {
		sb.WriteString(dimStyle.Render("No matching files."))
		return panelStyle.Render(sb.String())
	}

	end := np.offset + np.visibleCount()
	if end > len(np.rows) {
		end = len(np.rows)
	}

	for i := np.offset; i < end; i++ {
		row := np.rows[i]

		indent := strings.Repeat("  ", row.Depth)
		var label string
		if row.IsDir {
			marker := "▸"
			if row.Expanded {
				marker = "▾"
			}
			label = fmt.Sprintf(" %s%s %s/", indent, marker, row.Name)
		} else {
			label = fmt.Sprintf(" %s  %s", indent, row.Name)
		}
		label = truncate(label, np.width-1)

		switch {
		case i == np.cursor && focused:
			sb.WriteString(selectedStyle.Render(label))
		case row.IsDir:
			sb.WriteString(dirStyle.Render(label))
		default:
			sb.WriteString(fileStyle.Render(label))
		}
		sb.WriteString("\n")
	}

	return panelStyle.Render(sb.String())
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
