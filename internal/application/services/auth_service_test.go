package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-admin"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewAuthService(string(hash), "test-secret", time.Hour, testLogger(t))
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login("rahasia-admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Validate(token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateRejectsGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	assert.ErrorIs(t, svc.Validate("not-a-token"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Validate(""), ErrInvalidCredentials)
}

func TestValidateRejectsTokenFromOtherSecret(t *testing.T) {
	svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-admin"), bcrypt.MinCost)
	require.NoError(t, err)
	other := NewAuthService(string(hash), "different-secret", time.Hour, testLogger(t))

	token, err := other.Login("rahasia-admin")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Validate(token), ErrInvalidCredentials)
}

func TestUnconfiguredAuthStaysLocked(t *testing.T) {
	svc := NewAuthService("", "", time.Hour, testLogger(t))

	assert.False(t, svc.Enabled())

	_, err := svc.Login("anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
