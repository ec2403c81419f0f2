package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/theme"
)

// SplitPane lays out the navigation panel beside the document viewer.
// The navigation pane can be docked on either side or hidden entirely.
type SplitPane struct {
	DockLeft bool
	Ratio    float64 // proportion of the width given to the nav pane
	width    int
	height   int
	navOpen  bool
}

// NewSplitPane creates a split pane with the nav docked left.
func NewSplitPane() SplitPane {
	return SplitPane{
		DockLeft: true,
		Ratio:    0.25,
		navOpen:  true,
	}
}

// SetSize updates the split pane dimensions.
func (sp *SplitPane) SetSize(w, h int) {
	sp.width = w
	sp.height = h
}

// SetNavOpen controls whether the nav pane takes space.
func (sp *SplitPane) SetNavOpen(open bool) {
	sp.navOpen = open
}

// NavDimensions returns the width and height for the nav pane.
func (sp *SplitPane) NavDimensions() (int, int) {
	if !sp.navOpen {
		return 0, 0
	}
	w := int(float64(sp.width) * sp.Ratio)
	if w < 20 {
		w = 20
	}
	if w > sp.width-20 {
		w = sp.width / 2
	}
	return w, sp.height
}

// ViewerDimensions returns the width and height for the document pane.
func (sp *SplitPane) ViewerDimensions() (int, int) {
	if !sp.navOpen {
		return sp.width, sp.height
	}
	navW, _ := sp.NavDimensions()
	return sp.width - navW - 1, sp.height // -1 for the divider
}

// Render joins the nav and viewer content, honoring the dock side.
func (sp *SplitPane) Render(nav, viewer string) string {
	if !sp.navOpen {
		return viewer
	}

	t := theme.Current

	navW, _ := sp.NavDimensions()
	viewerW, _ := sp.ViewerDimensions()

	navStyle := lipgloss.NewStyle().
		Width(navW).
		Height(sp.height)

	viewerStyle := lipgloss.NewStyle().
		Width(viewerW).
		Height(sp.height)

	divider := lipgloss.NewStyle().
		Foreground(t.Border).
		Render("│")

	if sp.DockLeft {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			navStyle.Render(nav),
			divider,
			viewerStyle.Render(viewer),
		)
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		viewerStyle.Render(viewer),
		divider,
		navStyle.Render(nav),
	)
}
