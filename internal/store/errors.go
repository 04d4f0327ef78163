package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a registration uses an email that
	// is already present in the users file.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when no record matches the requested email.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level file errors, wrapped together with the underlying os error.
var (
	// ErrOpeningUsersFile is returned when the users file or its directory
	// cannot be created or opened.
	ErrOpeningUsersFile = errors.New("error opening users file")

	// ErrReadingUsersFile is returned when scanning the users file fails
	// mid-way.
	ErrReadingUsersFile = errors.New("error reading users file")

	// ErrWritingUsersFile is returned when appending a record fails.
	ErrWritingUsersFile = errors.New("error writing users file")
)
