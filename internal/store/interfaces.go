// Package store implements persistence for user accounts.
//
// Accounts live in an append-only flat file, one `name|email|passwordHash`
// record per line. Records are never rewritten or removed.
package store

import (
	"context"

	"github.com/MKhiriev/movisimple/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists and looks up user accounts by email.
type UserRepository interface {
	// CreateUser appends user to the store. It returns [ErrUserAlreadyExists]
	// if a record with the same email is already present.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the first record whose email equals
	// user.Email, or [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, user models.User) (models.User, error)
}
