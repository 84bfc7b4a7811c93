package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// cheatPrompt is the one-line developer code entry shown over the field.
type cheatPrompt struct {
	input  textinput.Model
	active bool
}

// cheatResult is what a key press did to the prompt.
type cheatResult int

const (
	cheatTyping cheatResult = iota
	cheatSubmitted
	cheatCancelled
)

func newCheatPrompt() cheatPrompt {
	ti := textinput.New()
	ti.Prompt = "code> "
	ti.Placeholder = "developer code"
	ti.CharLimit = 16
	ti.Width = 20
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	return cheatPrompt{input: ti}
}

func (c *cheatPrompt) open() tea.Cmd {
	c.active = true
	c.input.SetValue("")
	return c.input.Focus()
}

func (c *cheatPrompt) close() {
	c.active = false
	c.input.Blur()
}

// update feeds a key to the prompt. On submit the entered code is returned
// and the prompt closes.
func (c *cheatPrompt) update(msg tea.KeyMsg) (cheatResult, string, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		code := c.input.Value()
		c.close()
		return cheatSubmitted, code, nil
	case tea.KeyEsc:
		c.close()
		return cheatCancelled, "", nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cheatTyping, "", cmd
}

var cheatStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

func (c cheatPrompt) view() string {
	return cheatStyle.Render(c.input.View())
}
