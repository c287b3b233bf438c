package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cravefit/backend/internal/testhelpers"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Duplicate email is rejected
	_, err = svc.Register(ctx, "Ada Again", "ada@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)

	token, err = svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.NotEqual(t, claims.UserID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestAuthService_ValidateTokenRejectsForgeries(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewAuthService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.Register(ctx, "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	// Token signed with a different secret
	other := NewAuthService(db, "other-secret")
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken(token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
