package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameTooShort  = errors.New("name must be at least 2 characters")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrWeakPassword  = errors.New("password must be 8+ characters with an uppercase letter and a number")
	ErrEmptyPassword = errors.New("password is required")
)
