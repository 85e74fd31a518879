package store

import (
	"context"

	"github.com/pathforge/pathforge/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CredentialRepository is the client-side credential store: a local user
// list, a two-tier session record, and the opaque bearer token.
//
// Tier semantics: the durable tier survives process restarts (SQLite row),
// the ephemeral tier lives in process memory and dies with the process. At
// most one tier holds a session at a time; SetSession enforces exclusivity
// by clearing the other tier in the same call.
type CredentialRepository interface {
	// ListUsers returns every locally registered user in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SaveUsers replaces the whole stored user list in one transaction.
	SaveUsers(ctx context.Context, users []models.User) error

	// SetSession stores the session in the durable tier when remember is
	// true, otherwise in the ephemeral tier, clearing the other tier.
	SetSession(ctx context.Context, user models.UserSummary, remember bool) error

	// ClearSession removes the session from both tiers.
	ClearSession(ctx context.Context) error

	// GetSession returns the current session, checking the ephemeral tier
	// first. Returns ErrLocalSessionNotFound when both tiers are empty or
	// the durable record is unparsable.
	GetSession(ctx context.Context) (models.UserSummary, error)

	// SetToken stores the opaque bearer token in the durable tier.
	SetToken(ctx context.Context, token string) error

	// Token returns the stored bearer token or ErrTokenNotFound.
	Token(ctx context.Context) (string, error)
}

// DraftRepository persists the in-progress onboarding draft.
type DraftRepository interface {
	// SaveDraft overwrites the stored draft snapshot.
	SaveDraft(ctx context.Context, draft models.Draft) error

	// LoadDraft returns the stored draft. Absent or undecodable drafts are
	// reported as ErrDraftNotFound; staleness is judged by the caller.
	LoadDraft(ctx context.Context) (models.Draft, error)

	// ClearDraft removes the stored draft. Clearing an absent draft is a
	// no-op.
	ClearDraft(ctx context.Context) error
}
