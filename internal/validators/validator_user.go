package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/movisimple/models"
)

// Field names accepted by [UserValidator].
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// forbiddenRecordChars would break the "name|email|hash" line format.
const forbiddenRecordChars = "|\r\n"

// Byte limits keeping every record well below the store's line limit.
const (
	maxNameLength  = 256
	maxEmailLength = 256
)

// UserValidator validates [models.User] input of the auth endpoints.
// Registration checks every field; login passes FieldEmail and
// FieldPassword only.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
			if len(user.Name) > maxNameLength {
				return ErrValueTooLong
			}
			if strings.ContainsAny(user.Name, forbiddenRecordChars) {
				return ErrForbiddenCharacters
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
			if len(user.Email) > maxEmailLength {
				return ErrValueTooLong
			}
			if strings.ContainsAny(user.Email, forbiddenRecordChars) {
				return ErrForbiddenCharacters
			}
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare address such as "a@b.c", without a display name.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
