package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	service := NewCredentialService("secret", time.Hour)

	hash, err := service.HashPassword("StrongPass1")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass1", hash)

	assert.True(t, service.VerifyPassword("StrongPass1", hash))
	assert.False(t, service.VerifyPassword("wrong", hash))
}

func TestIssueAndResolveToken(t *testing.T) {
	service := NewCredentialService("secret", time.Hour)

	token, err := service.IssueToken("user-42", "user")
	require.NoError(t, err)

	userID, err := service.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	service := NewCredentialService("secret", time.Hour)

	_, err := service.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ResolveToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewCredentialService("secret-a", time.Hour)
	verifier := NewCredentialService("secret-b", time.Hour)

	token, err := issuer.IssueToken("user-42", "user")
	require.NoError(t, err)

	_, err = verifier.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsExpired(t *testing.T) {
	service := NewCredentialService("secret", time.Nanosecond)

	token, err := service.IssueToken("user-42", "user")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = service.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
