package models

// User represents a registered passenger account.
// Email is the unique identity; Name is only shown in UI.
type User struct {
	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Password is the plain-text password received from the client.
	// It is accepted on input only and never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored password representation (bcrypt, or the
	// hex SHA-256 digest of legacy records). It never leaves the server.
	PasswordHash string `json:"-"`
}

// Info returns the public part of the user.
func (u User) Info() UserInfo {
	return UserInfo{Name: u.Name, Email: u.Email}
}

// UserInfo is the public view of a [User] returned by the auth endpoints.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
