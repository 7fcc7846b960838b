package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobport/internal/authz"
	"jobport/internal/models"
)

type authFixture struct {
	svc        AuthService
	users      *memUserRepo
	businesses *memBusinessRepo
	blacklist  *memBlacklist
	tokens     TokenService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:      newMemUserRepo(),
		businesses: newMemBusinessRepo(),
		blacklist:  newMemBlacklist(),
		tokens:     newTestTokenService(),
	}
	f.svc = NewAuthService(f.users, f.businesses, f.blacklist, f.tokens)

	hash, err := f.svc.HashPassword("Sup3r-secret")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(&models.User{
		FullName:     "Minh Tran",
		Email:        "minh@example.com",
		PasswordHash: hash,
		Role:         authz.RoleUser,
		IsActive:     true,
	}))
	require.NoError(t, f.businesses.Create(&models.Business{
		FullName:     "Ha Nguyen",
		Email:        "ha@example.com",
		PasswordHash: hash,
		Role:         authz.RoleBusiness,
		IsActive:     true,
	}))
	return f
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		f := newAuthFixture(t)
		res, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)
		require.NotEmpty(t, res.RefreshToken)

		claims, err := f.tokens.Decode(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, TokenPurposeAccess, claims.Purpose)
		assert.Equal(t, authz.TypeAccountNormal, claims.TypeAccount)
		assert.Equal(t, authz.RoleUser, claims.Role)

		claims, err = f.tokens.Decode(res.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, TokenPurposeRefresh, claims.Purpose)
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Authenticate(models.LoginRequest{Email: "  MINH@example.com ", Password: "Sup3r-secret"})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.Authenticate(models.LoginRequest{Email: "ghost@example.com", Password: "Sup3r-secret"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("business login carries the business account type", func(t *testing.T) {
		f := newAuthFixture(t)
		res, err := f.svc.AuthenticateBusiness(models.LoginRequest{Email: "ha@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)

		claims, err := f.tokens.Decode(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, authz.TypeAccountBusiness, claims.TypeAccount)
		assert.Equal(t, authz.RoleBusiness, claims.Role)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("refresh token mints a new access token", func(t *testing.T) {
		f := newAuthFixture(t)
		login, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)

		res, err := f.svc.RefreshToken(login.RefreshToken)
		require.NoError(t, err)
		claims, err := f.tokens.Decode(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, TokenPurposeAccess, claims.Purpose)
		assert.Equal(t, "minh@example.com", claims.Email)
	})

	t.Run("access token is refused at the refresh endpoint", func(t *testing.T) {
		f := newAuthFixture(t)
		login, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)

		_, err = f.svc.RefreshToken(login.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		expired := NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)
		token, err := expired.SignRefresh(TokenClaims{Email: "minh@example.com", TypeAccount: authz.TypeAccountNormal})
		require.NoError(t, err)

		_, err = f.svc.RefreshToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("deleted account cannot refresh", func(t *testing.T) {
		f := newAuthFixture(t)
		login, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)
		require.NoError(t, f.users.Delete(1))

		_, err = f.svc.RefreshToken(login.RefreshToken)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.RefreshToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLogout(t *testing.T) {
	t.Run("revokes the token for authenticated requests", func(t *testing.T) {
		f := newAuthFixture(t)
		login, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)

		// valid before logout
		_, err = f.svc.CheckVerifyToken(login.AccessToken)
		require.NoError(t, err)

		require.NoError(t, f.svc.Logout(login.AccessToken))
		_, err = f.svc.CheckVerifyToken(login.AccessToken)
		assert.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := newAuthFixture(t)
		login, err := f.svc.Authenticate(models.LoginRequest{Email: "minh@example.com", Password: "Sup3r-secret"})
		require.NoError(t, err)

		require.NoError(t, f.svc.Logout(login.AccessToken))
		require.NoError(t, f.svc.Logout(login.AccessToken))
		assert.Len(t, f.blacklist.tokens, 1)
	})

	t.Run("accepts undecodable tokens", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.svc.Logout("opaque-garbage"))
		revoked, _ := f.blacklist.Exists("opaque-garbage")
		assert.True(t, revoked)
	})
}

func TestLoadAccount(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.svc.LoadAccount(&TokenClaims{AccountID: 1, TypeAccount: authz.TypeAccountNormal})
	require.NoError(t, err)
	assert.IsType(t, &models.User{}, user)

	business, err := f.svc.LoadAccount(&TokenClaims{AccountID: 1, TypeAccount: authz.TypeAccountBusiness})
	require.NoError(t, err)
	assert.IsType(t, &models.Business{}, business)

	_, err = f.svc.LoadAccount(&TokenClaims{AccountID: 99, TypeAccount: authz.TypeAccountNormal})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
