package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/crypto"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/mock"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/models"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "pathforge-test",
		TokenDuration: time.Hour,
	}
}

// newTestAuthSvc builds an authService over a mocked user repository and a
// mocked password service.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordService) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockPasswords := mock.NewMockPasswordService(ctrl)

	svc := NewAuthService(mockUsers, testAuthConfig(), logger.NewLogger("test")).(*authService)
	svc.passwords = mockPasswords

	return svc, mockUsers, mockPasswords
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockPasswords := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockPasswords.EXPECT().Hash("Str0ngpass").Return("bcrypt-hash", nil),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any(), "bcrypt-hash").DoAndReturn(
			func(_ context.Context, u models.User, _ string) (models.User, error) {
				assert.Equal(t, "alice@example.com", u.Email, "email is lowercased before persistence")
				assert.Equal(t, "Alice", u.Name)
				u.ID = 1
				return u, nil
			},
		),
	)

	user, err := svc.Register(ctx, models.RegisterRequest{
		Username: " Alice ",
		Email:    "ALICE@Example.com",
		Password: "Str0ngpass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_Register_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "Alice",
		Email:    "not-an-email",
		Password: "Str0ngpass",
	})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockPasswords := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockPasswords.EXPECT().Hash(gomock.Any()).Return("bcrypt-hash", nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "Alice",
		Email:    "alice@example.com",
		Password: "Str0ngpass",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockPasswords := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 5, Name: "Alice", Email: "alice@example.com"}
	gomock.InOrder(
		mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(stored, "bcrypt-hash", nil),
		mockPasswords.EXPECT().Compare("bcrypt-hash", "Str0ngpass").Return(nil),
		mockUsers.EXPECT().UpdateLastActive(ctx, int64(5)).Return(nil),
	)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "Alice@Example.com", Password: "Str0ngpass"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").
		Return(models.User{}, "", store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockPasswords := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{ID: 5, Email: "alice@example.com"}, "bcrypt-hash", nil)
	mockPasswords.EXPECT().Compare("bcrypt-hash", "wrong").Return(crypto.ErrPasswordMismatch)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_LastActiveFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockPasswords := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "alice@example.com").
		Return(models.User{ID: 5, Email: "alice@example.com"}, "bcrypt-hash", nil)
	mockPasswords.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
	mockUsers.EXPECT().UpdateLastActive(ctx, int64(5)).Return(errors.New("db busy"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "alice@example.com", Password: "Str0ngpass"})
	require.NoError(t, err)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, 3, len(strings.Split(token.SignedString, ".")))

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ParseToken(ctx, "not.a.jwt")
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		other := NewAuthService(mock.NewMockUserRepository(ctrl), config.Auth{
			TokenSignKey:  "some-other-key",
			TokenIssuer:   "pathforge-test",
			TokenDuration: time.Hour,
		}, logger.NewLogger("test"))

		token, err := other.CreateToken(ctx, 1)
		require.NoError(t, err)

		_, err = svc.ParseToken(ctx, token.SignedString)
		require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	})
}
