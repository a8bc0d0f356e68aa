// Package prompt reads one line of text from the user.
package prompt

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements a single-line Bubble Tea text prompt.
type Model struct {
	input    textinput.Model
	value    string
	done     bool
	canceled bool
}

// NewModel constructs a prompt model showing the given prompt.
func NewModel(prompt string) *Model {
	input := textinput.New()
	input.Prompt = prompt
	input.PromptStyle = promptStyle
	input.TextStyle = textStyle
	input.Placeholder = "type or paste a line of text"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &Model{input: input}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	switch {
	case m.canceled:
		return ""
	case m.done:
		// Leave the submitted line on screen once the program exits.
		return m.input.Prompt + m.value + "\n"
	default:
		return m.input.View() + "\n" + hintStyle.Render("enter: analyze  esc: cancel") + "\n"
	}
}

// Value returns the submitted text.
func (m *Model) Value() string {
	return m.value
}

// Canceled reports whether the user left without submitting.
func (m *Model) Canceled() bool {
	return m.canceled
}
