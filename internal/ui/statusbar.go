package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/theme"
)

// StatusBar shows the current document info at the bottom of the screen.
type StatusBar struct {
	location   string
	title      string
	loading    bool
	scrollInfo string
	mode       string
	filter     string // active filter label, empty when showing everything
	width      int
	message    string // temporary status message
}

// NewStatusBar creates a new status bar.
func NewStatusBar() StatusBar {
	return StatusBar{
		mode: "NORMAL",
	}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetLocation updates the displayed location.
func (s *StatusBar) SetLocation(loc string) {
	s.location = loc
}

// SetTitle updates the document title.
func (s *StatusBar) SetTitle(title string) {
	s.title = title
}

// SetLoading sets the loading indicator state.
func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

// SetScrollInfo sets the scroll position string (e.g. "42%", "TOP", "BOT").
func (s *StatusBar) SetScrollInfo(info string) {
	s.scrollInfo = info
}

// SetMode sets the current mode indicator (NORMAL, FILES, HISTORY, etc).
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetFilter sets the active filter label shown on the right.
func (s *StatusBar) SetFilter(label string) {
	s.filter = label
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.Current

	modeStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	switch s.mode {
	case "NORMAL":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Primary)
	case "FILES":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Success)
	case "INSERT":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Accent)
	case "COMMAND":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Warning)
	case "HISTORY":
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Secondary)
	default:
		modeStyle = modeStyle.
			Foreground(t.Background).
			Background(t.Secondary)
	}

	mode := modeStyle.Render(s.mode)

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface)

	// Left side: loading / message / title / location.
	var left string
	switch {
	case s.loading:
		loadStyle := lipgloss.NewStyle().
			Foreground(t.Warning).
			Background(t.Surface).
			Bold(true).
			Padding(0, 1)
		left = loadStyle.Render("⏳ Loading...")
	case s.message != "":
		msgStyle := lipgloss.NewStyle().
			Foreground(t.Info).
			Background(t.Surface).
			Padding(0, 1)
		left = msgStyle.Render(s.message)
	case s.title != "":
		titleStyle := lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1)
		left = titleStyle.Render(s.title)
	case s.location != "":
		locStyle := lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			Padding(0, 1)
		left = locStyle.Render(s.location)
	}

	// Right side: filter + scroll position.
	var right string
	if s.filter != "" {
		filterStyle := lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Surface).
			Padding(0, 1)
		right += filterStyle.Render(s.filter)
	}

	scrollStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Secondary).
		Background(t.Surface).
		Padding(0, 1)
	right += scrollStyle.Render(s.scrollInfo)

	modeWidth := lipgloss.Width(mode)
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	spacerWidth := s.width - modeWidth - leftWidth - rightWidth
	if spacerWidth < 0 {
		spacerWidth = 0
	}

	spacerStyle := lipgloss.NewStyle().
		Background(t.Surface)
	spacer := spacerStyle.Render(fmt.Sprintf("%*s", spacerWidth, ""))

	return barStyle.Render(mode + left + spacer + right)
}
