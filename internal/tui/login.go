// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/movisimple/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	loginEmail = iota
	loginPassword
)

func newLoginModel() formModel {
	email := newTextInput("alice@example.com", 254, false)
	email.Focus()

	return formModel{
		title:  "LOG IN",
		labels: []string{"Email", "Password"},
		inputs: []textinput.Model{email, newTextInput("password", 256, true)},
	}
}

// loginUser returns the credentials typed into the login form, or a message
// explaining what is missing.
func loginUser(m formModel) (models.User, string) {
	user := models.User{Email: m.value(loginEmail), Password: m.value(loginPassword)}
	if user.Email == "" || user.Password == "" {
		return models.User{}, "Email and password are required"
	}
	return user, ""
}
