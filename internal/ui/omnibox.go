package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ferndev/fern/internal/theme"
)

// Omnibox is the path/URL input bar at the top of the screen.
type Omnibox struct {
	input  textinput.Model
	active bool
	width  int
}

// NewOmnibox creates a new omnibox.
func NewOmnibox() Omnibox {
	ti := textinput.New()
	ti.Placeholder = "Path or URL..."
	ti.CharLimit = 2048
	ti.Width = 60

	return Omnibox{
		input: ti,
	}
}

// SetWidth updates the omnibox width.
func (o *Omnibox) SetWidth(w int) {
	o.width = w
	o.input.Width = w - 8 // account for prompt and padding
}

// Focus activates the omnibox for input.
func (o *Omnibox) Focus() tea.Cmd {
	o.active = true
	return o.input.Focus()
}

// Blur deactivates the omnibox.
func (o *Omnibox) Blur() {
	o.active = false
	o.input.Blur()
}

// IsActive reports whether the omnibox is focused.
func (o *Omnibox) IsActive() bool {
	return o.active
}

// Value returns the current input text.
func (o *Omnibox) Value() string {
	return o.input.Value()
}

// SetValue sets the omnibox text.
func (o *Omnibox) SetValue(s string) {
	o.input.SetValue(s)
	o.input.SetCursor(len(s))
}

// Reset clears the omnibox.
func (o *Omnibox) Reset() {
	o.input.Reset()
}

// Update handles messages for the omnibox.
func (o *Omnibox) Update(msg tea.Msg) (*Omnibox, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the omnibox.
func (o *Omnibox) View() string {
	t := theme.Current

	var barStyle lipgloss.Style
	if o.active {
		barStyle = lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1).
			Width(o.width - 2)
	} else {
		barStyle = lipgloss.NewStyle().
			Foreground(t.TextDim).
			Background(t.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1).
			Width(o.width - 2)
	}

	promptStyle := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	content := promptStyle.Render("") + " " + o.input.View()

	return barStyle.Render(content)
}
