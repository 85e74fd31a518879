// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// PathForge server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgEmailAlreadyRegistered is returned when registration is attempted
	// with an email that already has an account.
	MsgEmailAlreadyRegistered = "this email is already registered"

	// MsgUsernameAlreadyTaken is returned when registration is attempted
	// with a username that already has an account.
	MsgUsernameAlreadyTaken = "this username is already taken"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgOnboardingIncomplete is returned when path generation is requested
	// before a target role has been saved.
	MsgOnboardingIncomplete = "complete onboarding before generating a path"

	// MsgNoPathGenerated is returned when the active path is requested but
	// none has been generated yet.
	MsgNoPathGenerated = "no learning path has been generated yet"

	// MsgGoalSaved, MsgSkillsSaved and MsgPreferencesSaved acknowledge the
	// onboarding section submissions.
	MsgGoalSaved        = "goal saved"
	MsgSkillsSaved      = "skills saved"
	MsgPreferencesSaved = "preferences saved"

	// MsgPathGenerated acknowledges a successful generation request.
	MsgPathGenerated = "learning path generated"
)
