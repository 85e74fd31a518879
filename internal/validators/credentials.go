package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/pathforge/pathforge/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a registration payload.
	FieldName = "name"

	// FieldEmail targets the email address of a payload.
	FieldEmail = "email"

	// FieldPassword targets the password of a payload.
	FieldPassword = "password"
)

// emailPattern matches "something@something.tld" where no part contains
// whitespace and the local/domain parts contain no extra "@". This is the
// permissive shape check used at sign-up and sign-in, not a full RFC 5322
// parse.
var emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s]+$`)

// IsValidEmail reports whether s has a plausible email shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsStrongPassword reports whether s satisfies the strength rule:
// length of at least 8, at least one uppercase letter, at least one digit.
func IsStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var hasUpper, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasDigit
}

// CredentialValidator implements the Validator interface for the
// authentication payloads: RegisterRequest and LoginRequest. It supports
// both value and pointer receivers and optional field-level scoping.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator
// and returns it as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known payload.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if len(strings.TrimSpace(req.Username)) < 2 {
				return ErrNameTooShort
			}
		case FieldEmail:
			if !IsValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !IsStrongPassword(req.Password) {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if !IsValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
