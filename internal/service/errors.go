package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserNotFound        = errors.New("no account found with this email")
	ErrEmailTaken          = errors.New("this email is already registered")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrNotAuthenticated    = errors.New("not authenticated")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("login failed on server")

	ErrRoleRequired         = errors.New("select a career role to continue")
	ErrOnboardingIncomplete = errors.New("onboarding is incomplete")
	ErrSubmissionFailed     = errors.New("failed to submit onboarding data")
	ErrGenerationFailed     = errors.New("failed to generate learning path")
	ErrUnknownRole          = errors.New("unknown target role")
)
