package service

import (
	"context"
	"testing"
	"time"

	"task-manager-service/internal/jwt"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testTokenTTL = time.Hour
)

func newAuthFixture() (*AuthService, *fakeAuthRepo, *fakeUserRepo) {
	authRepo := newFakeAuthRepo()
	userRepo := newFakeUserRepo()
	return NewAuthService(authRepo, userRepo, testSecret, testTokenTTL), authRepo, userRepo
}

func TestRegister(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "password is stored hashed")

	_, err = svc.Register(context.Background(), "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, my_errors.ErrUserAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "", "a@b.c", "pw")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)

	_, err = svc.Register(context.Background(), "bob", "a@b.c", "")
	assert.ErrorIs(t, err, my_errors.ErrEmptyField)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()
	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := svc.Login(context.Background(), "alice", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("live tokens are reused", func(t *testing.T) {
		first, _, err := svc.Login(context.Background(), "alice", "s3cret")
		require.NoError(t, err)
		second, _, err := svc.Login(context.Background(), "alice", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, my_errors.ErrBadCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), "ghost", "whatever")
		assert.ErrorIs(t, err, my_errors.ErrBadCredentials)
	})
}

func TestLogin_TokenTTLComesFromConfig(t *testing.T) {
	authRepo := newFakeAuthRepo()
	userRepo := newFakeUserRepo()
	svc := NewAuthService(authRepo, userRepo, testSecret, 2*time.Minute)

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	before := time.Now()
	token, _, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	claims, err := jwt.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(2*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	stored := authRepo.tokens[registered.UserID]
	require.NotNil(t, stored)
	assert.WithinDuration(t, before.Add(2*time.Minute), stored.ExpiresAt, 5*time.Second)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc, _, userRepo := newAuthFixture()
	user, err := svc.Register(context.Background(), "carol", "carol@example.com", "pw")
	require.NoError(t, err)

	userRepo.users[user.UserID].IsActive = false

	_, _, err = svc.Login(context.Background(), "carol", "pw")
	assert.ErrorIs(t, err, my_errors.ErrUserIsNotActive)
}

func TestValidateToken(t *testing.T) {
	svc, authRepo, userRepo := newAuthFixture()
	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	token, _, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	t.Run("valid token resolves the user", func(t *testing.T) {
		userID, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, userID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("token missing from the database", func(t *testing.T) {
		delete(authRepo.tokens, registered.UserID)
		_, err := svc.ValidateToken(context.Background(), token)
		assert.Error(t, err)
	})

	t.Run("deactivated user is rejected even with a live token", func(t *testing.T) {
		require.NoError(t, authRepo.SaveToken(context.Background(), registered.UserID, token, time.Now().Add(time.Hour)))
		userRepo.users[registered.UserID].IsActive = false
		_, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, my_errors.ErrUserIsNotActive)
	})
}
