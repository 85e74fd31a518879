package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/crypto"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/internal/utils"
	"github.com/pathforge/pathforge/internal/validators"
	"github.com/pathforge/pathforge/models"
)

// authService is the concrete implementation of AuthService. It handles user
// registration, credential verification, and JWT token lifecycle using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users.
	userRepository store.UserRepository

	// passwords hashes and compares passwords with bcrypt.
	passwords crypto.PasswordService

	// validator applies the shared credential validation rules to incoming
	// payloads.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwords:      crypto.NewPasswordService(),
		validator:      validators.NewCredentialValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register implements [AuthService].
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.passwords.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:  req.Username,
		Email: req.Email,
	}
	registered, err := a.userRepository.CreateUser(ctx, user, hash)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("invalid login data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, hash, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.passwords.Compare(hash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Warn().Int64("id", foundUser.ID).Str("email", foundUser.Email).Msg("wrong password")
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, fmt.Errorf("compare password: %w", err)
	}

	if err = a.userRepository.UpdateLastActive(ctx, foundUser.ID); err != nil {
		log.Warn().Err(err).Int64("id", foundUser.ID).Msg("failed to stamp last_active")
	}

	return foundUser, nil
}

// CreateToken implements [AuthService]. The token is signed with the
// configured tokenSignKey, carries the configured tokenIssuer as the "iss"
// claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken implements [AuthService]. Any validation failure (expired,
// wrong issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so
// that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
