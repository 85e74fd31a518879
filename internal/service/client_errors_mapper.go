// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/pathforge/pathforge/internal/adapter"
	"github.com/pathforge/pathforge/internal/app"
	"github.com/pathforge/pathforge/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgOnboardingIncomplete:
			return ErrOnboardingIncomplete
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgNoPathGenerated {
			return store.ErrNoPathWasFound
		}
		return ErrUserNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailTaken

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrGenerationFailed
	}

	return err
}

// extractBody extracts the body from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
