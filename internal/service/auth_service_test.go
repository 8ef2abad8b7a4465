package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestRegister_And_Login(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos.users, testSecret, time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "the hash never leaves the service")

	token, loggedIn, err := svc.Login(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "workout-planner", claims.Issuer)
}

func TestRegister_DuplicateUsernameIsCaseInsensitive(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos.users, testSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Alice", "otherpass123")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos.users, testSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrongpass")
	require.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody", "s3cretpass")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestGetUser_ReturnsAccountWithoutHash(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewAuthService(repos.users, testSecret, time.Hour)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "s3cretpass")
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.GetUser(ctx, 9999)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	repos := newTestRepos(t)
	assert.Panics(t, func() {
		NewAuthService(repos.users, "", time.Hour)
	})
}
