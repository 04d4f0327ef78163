package tui

import "strings"

const (
	welcomeLogin = iota
	welcomeRegister
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString("Plan the fastest trip across the MoviSimple network.\n\nChoose an action:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	return renderPage("MOVISIMPLE", b.String(), "↑/↓: select  enter: open  v: about  q: quit")
}
