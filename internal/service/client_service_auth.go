package service

import (
	"context"
	"strings"
	"time"

	"github.com/pathforge/pathforge/internal/adapter"
	"github.com/pathforge/pathforge/internal/crypto"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/internal/validators"
	"github.com/pathforge/pathforge/models"
)

const defaultLoginRedirect = "/login"

type clientAuthService struct {
	credentials store.CredentialRepository
	validator   validators.Validator
	adapter     adapter.ServerAdapter
	logger      *logger.Logger
}

// NewClientAuthService wires the local auth workflow to the credential store,
// the credential validator, and the server adapter used for the best-effort
// token exchange.
func NewClientAuthService(credentials store.CredentialRepository, validator validators.Validator, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		credentials: credentials,
		validator:   validator,
		adapter:     serverAdapter,
		logger:      logger,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, name, email, password, confirm string) (models.UserSummary, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	req := models.RegisterRequest{Username: name, Email: email, Password: password}
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserSummary{}, err
	}
	if password != confirm {
		return models.UserSummary{}, ErrPasswordMismatch
	}

	users, err := a.credentials.ListUsers(ctx)
	if err != nil {
		return models.UserSummary{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return models.UserSummary{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:        time.Now().UnixMilli(),
		Name:      name,
		Email:     email,
		Password:  crypto.Obfuscate(password),
		CreatedAt: time.Now(),
	}

	if err = a.credentials.SaveUsers(ctx, append(users, user)); err != nil {
		return models.UserSummary{}, err
	}

	summary := user.Summary()
	if err = a.credentials.SetSession(ctx, summary, true); err != nil {
		return models.UserSummary{}, err
	}

	a.exchangeToken(ctx, func(ctx context.Context) error {
		_, err := a.adapter.Register(ctx, req)
		return err
	})

	return summary, nil
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string, remember bool) (models.UserSummary, error) {
	email = strings.TrimSpace(email)

	req := models.LoginRequest{Email: email, Password: password, Remember: remember}
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserSummary{}, err
	}

	users, err := a.credentials.ListUsers(ctx)
	if err != nil {
		return models.UserSummary{}, err
	}

	// exact match against the stored lowercase-normalized email; sign-up
	// lowercases on write, so mixed-case input will simply not match
	var found *models.User
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return models.UserSummary{}, ErrUserNotFound
	}

	stored, err := crypto.Deobfuscate(found.Password)
	if err != nil || stored != password {
		return models.UserSummary{}, ErrWrongPassword
	}

	summary := found.Summary()
	if err = a.credentials.SetSession(ctx, summary, remember); err != nil {
		return models.UserSummary{}, err
	}

	a.exchangeToken(ctx, func(ctx context.Context) error {
		_, err := a.adapter.Login(ctx, req)
		return err
	})

	return summary, nil
}

// Logout implements [ClientAuthService]. Clearing an absent session is not
// an error.
func (a *clientAuthService) Logout(ctx context.Context) error {
	return a.credentials.ClearSession(ctx)
}

func (a *clientAuthService) IsAuthenticated(ctx context.Context) bool {
	_, err := a.credentials.GetSession(ctx)
	return err == nil
}

func (a *clientAuthService) RequireAuth(ctx context.Context, redirect string) (bool, string) {
	if a.IsAuthenticated(ctx) {
		return true, ""
	}
	if redirect == "" {
		redirect = defaultLoginRedirect
	}
	return false, redirect
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.UserSummary, error) {
	return a.credentials.GetSession(ctx)
}

// exchangeToken performs the best-effort server credential exchange. Any
// failure is logged and swallowed: local authentication never depends on the
// server being reachable.
func (a *clientAuthService) exchangeToken(ctx context.Context, call func(context.Context) error) {
	if a.adapter == nil {
		return
	}

	if err := call(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server credential exchange failed, continuing offline")
		return
	}

	if token := a.adapter.Token(); token != "" {
		if err := a.credentials.SetToken(ctx, token); err != nil {
			a.logger.Warn().Err(err).Msg("failed to persist bearer token")
		}
	}
}
