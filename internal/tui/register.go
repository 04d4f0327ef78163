package tui

import (
	"github.com/MKhiriev/movisimple/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

func newRegisterModel() formModel {
	name := newTextInput("Alice", 100, false)
	name.Focus()

	return formModel{
		title:  "REGISTER",
		labels: []string{"Name", "Email", "Password", "Repeat password"},
		inputs: []textinput.Model{
			name,
			newTextInput("alice@example.com", 254, false),
			newTextInput("password", 256, true),
			newTextInput("password", 256, true),
		},
	}
}

// registerUser returns the account typed into the register form, or a
// message explaining what is wrong.
func registerUser(m formModel) (models.User, string) {
	user := models.User{
		Name:     m.value(registerName),
		Email:    m.value(registerEmail),
		Password: m.value(registerPassword),
	}
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return models.User{}, "Name, email and password are required"
	}
	if user.Password != m.value(registerRepeat) {
		return models.User{}, "Passwords do not match"
	}
	return user, ""
}
