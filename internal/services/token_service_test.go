package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobport/internal/authz"
)

func newTestTokenService() TokenService {
	return NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService()
	in := TokenClaims{
		Email:       "ha@example.com",
		AccountID:   7,
		IsActive:    true,
		Role:        authz.RoleBusiness,
		TypeAccount: authz.TypeAccountBusiness,
	}

	access, err := svc.SignAccess(in)
	require.NoError(t, err)
	refresh, err := svc.SignRefresh(in)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	got, err := svc.Decode(access)
	require.NoError(t, err)
	assert.Equal(t, "ha@example.com", got.Email)
	assert.Equal(t, 7, got.AccountID)
	assert.Equal(t, authz.RoleBusiness, got.Role)
	assert.Equal(t, authz.TypeAccountBusiness, got.TypeAccount)
	assert.Equal(t, TokenPurposeAccess, got.Purpose)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, got.ExpiresAt.After(time.Now()))

	got, err = svc.Decode(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenPurposeRefresh, got.Purpose)
}

func TestTokenDecodeRejectsTampering(t *testing.T) {
	svc := newTestTokenService()
	token, err := svc.SignAccess(TokenClaims{Email: "ha@example.com", AccountID: 1})
	require.NoError(t, err)

	// flip one character inside the payload so the signature no longer matches
	i := strings.Index(token, ".") + 1
	flipped := byte('A')
	if token[i] == flipped {
		flipped = 'B'
	}
	tampered := token[:i] + string(flipped) + token[i+1:]
	_, err = svc.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// garbage input
	_, err = svc.Decode("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// token signed with a different key
	other := NewTokenService("other-a", "other-r", time.Hour, time.Hour)
	foreign, err := other.SignAccess(TokenClaims{Email: "x@example.com"})
	require.NoError(t, err)
	_, err = svc.Decode(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenDecodeKeepsExpiredClaims(t *testing.T) {
	// an expired token still decodes; the caller decides what expiry means
	svc := NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	token, err := svc.SignAccess(TokenClaims{Email: "ha@example.com"})
	require.NoError(t, err)

	claims, err := svc.Decode(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}

func TestTokenShapeIsJWT(t *testing.T) {
	svc := newTestTokenService()
	token, err := svc.SignAccess(TokenClaims{Email: "ha@example.com"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
}
