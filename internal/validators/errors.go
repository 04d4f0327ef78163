package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmptyPassword       = errors.New("password is required")
	ErrForbiddenCharacters = errors.New("value contains forbidden characters")
	ErrValueTooLong        = errors.New("value is too long")

	ErrStationOutOfRange = errors.New("station does not exist")
	ErrSameStation       = errors.New("origin and destination must differ")
)
