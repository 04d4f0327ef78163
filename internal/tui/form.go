package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a vertical list of labelled text inputs with one focused.
type formModel struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int

	submitting bool
}

func newTextInput(placeholder string, limit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (m formModel) focusNext() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) focusPrev() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// value returns the trimmed content of input i. Secrets are not trimmed.
func (m formModel) value(i int) string {
	if m.inputs[i].EchoMode == textinput.EchoPassword {
		return m.inputs[i].Value()
	}
	return strings.TrimSpace(m.inputs[i].Value())
}

func (m formModel) updateFocused(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(m.labels[i])
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	if m.submitting {
		b.WriteString("Sending...")
	}

	return renderPage(m.title, b.String(), "tab/shift+tab: field  enter: submit  esc: back")
}
