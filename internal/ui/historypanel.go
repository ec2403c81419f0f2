package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/theme"
	"github.com/ferndev/fern/internal/viewer"
)

// HistoryPanel displays the browsing history with vim navigation. Entries
// are shown newest last, with the current history position marked.
type HistoryPanel struct {
	entries  []viewer.Location
	current  int // index of the current history position, -1 if none
	cursor   int
	offset   int // scroll offset for visible window
	width    int
	height   int
	visible  bool
	lastGKey bool // for gg detection within the panel
}

// NewHistoryPanel creates a new history panel.
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{current: -1}
}

// SetEntries updates the displayed locations and the current position.
// The cursor starts on the current entry.
func (hp *HistoryPanel) SetEntries(entries []viewer.Location, current int) {
	hp.entries = entries
	hp.current = current
	hp.cursor = current
	if hp.cursor < 0 {
		hp.cursor = 0
	}
	if hp.cursor >= len(entries) {
		hp.cursor = len(entries) - 1
	}
	if hp.cursor < 0 {
		hp.cursor = 0
	}
	hp.offset = 0
	hp.ensureVisible()
}

// SetSize updates the panel dimensions.
func (hp *HistoryPanel) SetSize(w, h int) {
	hp.width = w
	hp.height = h
}

// Show makes the panel visible.
func (hp *HistoryPanel) Show() {
	hp.visible = true
	hp.lastGKey = false
}

// Hide closes the panel.
func (hp *HistoryPanel) Hide() {
	hp.visible = false
	hp.lastGKey = false
}

// IsVisible reports whether the panel is shown.
func (hp *HistoryPanel) IsVisible() bool {
	return hp.visible
}

// CursorUp moves the cursor up one entry.
func (hp *HistoryPanel) CursorUp() {
	hp.lastGKey = false
	if hp.cursor > 0 {
		hp.cursor--
		hp.ensureVisible()
	}
}

// CursorDown moves the cursor down one entry.
func (hp *HistoryPanel) CursorDown() {
	hp.lastGKey = false
	if hp.cursor < len(hp.entries)-1 {
		hp.cursor++
		hp.ensureVisible()
	}
}

// GotoTop moves to the first entry.
func (hp *HistoryPanel) GotoTop() {
	hp.lastGKey = false
	hp.cursor = 0
	hp.offset = 0
}

// GotoBottom moves to the last entry.
func (hp *HistoryPanel) GotoBottom() {
	hp.lastGKey = false
	if len(hp.entries) > 0 {
		hp.cursor = len(hp.entries) - 1
		hp.ensureVisible()
	}
}

// HalfPageDown scrolls down half a page.
func (hp *HistoryPanel) HalfPageDown() {
	hp.lastGKey = false
	hp.cursor += hp.visibleCount() / 2
	if hp.cursor >= len(hp.entries) {
		hp.cursor = len(hp.entries) - 1
	}
	if hp.cursor < 0 {
		hp.cursor = 0
	}
	hp.ensureVisible()
}

// HalfPageUp scrolls up half a page.
func (hp *HistoryPanel) HalfPageUp() {
	hp.lastGKey = false
	hp.cursor -= hp.visibleCount() / 2
	if hp.cursor < 0 {
		hp.cursor = 0
	}
	hp.ensureVisible()
}

// HandleGKey handles the "g" key for gg detection.
// Returns true if "gg" was completed (go to top).
func (hp *HistoryPanel) HandleGKey() bool {
	if hp.lastGKey {
		hp.GotoTop()
		return true
	}
	hp.lastGKey = true
	return false
}

// ResetGKey resets the g key state (called on any non-g key press).
func (hp *HistoryPanel) ResetGKey() {
	hp.lastGKey = false
}

// SelectedIndex returns the cursor index, or -1 if the panel is empty.
func (hp *HistoryPanel) SelectedIndex() int {
	if len(hp.entries) == 0 {
		return -1
	}
	return hp.cursor
}

// SelectedEntry returns the location at the cursor, or false if empty.
func (hp *HistoryPanel) SelectedEntry() (viewer.Location, bool) {
	if len(hp.entries) == 0 || hp.cursor < 0 || hp.cursor >= len(hp.entries) {
		return viewer.Location{}, false
	}
	return hp.entries[hp.cursor], true
}

// visibleCount returns how many entries fit in the visible area.
func (hp *HistoryPanel) visibleCount() int {
	// 2 lines for the header, 1 for the footer hint.
	available := hp.height - 3
	if available < 1 {
		return 1
	}
	return available
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (hp *HistoryPanel) ensureVisible() {
	visible := hp.visibleCount()
	if hp.cursor < hp.offset {
		hp.offset = hp.cursor
	}
	if hp.cursor >= hp.offset+visible {
		hp.offset = hp.cursor - visible + 1
	}
	if hp.offset < 0 {
		hp.offset = 0
	}
}

// View renders the history panel.
func (hp *HistoryPanel) View() string {
	if !hp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(hp.width).
		Height(hp.height)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(hp.width).
		Padding(0, 1)

	separatorStyle := lipgloss.NewStyle().
		Foreground(t.Border)

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true).
		Width(hp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(hp.width).
		Padding(0, 1)

	remoteStyle := lipgloss.NewStyle().
		Foreground(t.Link).
		Width(hp.width).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("📜 History (%d)", len(hp.entries))))
	sb.WriteString("\n")

	sepWidth := hp.width
	if sepWidth < 1 {
		sepWidth = 1
	}
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", sepWidth)))
	sb.WriteString("\n")

	if len(hp.entries) == 0 {
		sb.WriteString(dimStyle.Render("No history yet."))
		return panelStyle.Render(sb.String())
	}

	visible := hp.visibleCount()
	end := hp.offset + visible
	if end > len(hp.entries) {
		end = len(hp.entries)
	}

	for i := hp.offset; i < end; i++ {
		entry := hp.entries[i]

		marker := " "
		if i == hp.current {
			marker = "●"
		}
		line := fmt.Sprintf("%s %s", marker, truncate(entry.String(), hp.width-6))

		switch {
		case i == hp.cursor:
			sb.WriteString(selectedStyle.Render("▸ " + line))
		case entry.IsRemote():
			sb.WriteString(remoteStyle.Render("  " + line))
		default:
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	linesUsed := 2 + (end - hp.offset)
	remaining := hp.height - linesUsed
	if remaining > 1 {
		for i := 0; i < remaining-1; i++ {
			sb.WriteString("\n")
		}
		hintStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Padding(0, 1)
		sb.WriteString(hintStyle.Render("j/k:move  Enter:open  d:del  Esc:close"))
	}

	return panelStyle.Render(sb.String())
}
