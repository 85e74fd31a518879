// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the PathForge server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/pathforge/pathforge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the PathForge
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty value clears the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account on the server. On success the bearer token
	// is extracted from the Authorization response header and stored via
	// SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserSummary, error)

	// Login authenticates against the server. On success the bearer token is
	// extracted from the Authorization response header and stored via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.UserSummary, error)

	// SaveGoal submits the career goal section of onboarding.
	SaveGoal(ctx context.Context, req models.GoalRequest) error

	// SaveSkills submits the collected skill list.
	SaveSkills(ctx context.Context, req models.SkillsRequest) error

	// SavePreferences submits the learning preferences section.
	SavePreferences(ctx context.Context, req models.PreferencesRequest) error

	// OnboardingStatus reports which onboarding sections the server has
	// recorded for the authenticated user.
	OnboardingStatus(ctx context.Context) (models.StatusResponse, error)

	// GeneratePath asks the server to generate a learning path from the
	// submitted onboarding data. The request has no body.
	GeneratePath(ctx context.Context) error

	// GetPath fetches the active generated path. The response is validated
	// at this boundary: a body that does not decode into
	// [models.LearningPath] surfaces [ErrSchema] instead of partial data.
	GetPath(ctx context.Context) (models.LearningPath, error)
}
