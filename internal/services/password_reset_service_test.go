package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jobport/internal/authz"
	"jobport/internal/models"
)

type resetFixture struct {
	svc    PasswordResetService
	users  *memUserRepo
	resets *memPasswordResetRepo
	mails  *fakeEmailService
}

func newResetFixture(t *testing.T) *resetFixture {
	t.Helper()
	f := &resetFixture{
		users:  newMemUserRepo(),
		resets: newMemPasswordResetRepo(),
		mails:  &fakeEmailService{},
	}
	auth := NewAuthService(f.users, newMemBusinessRepo(), newMemBlacklist(), newTestTokenService())
	f.svc = NewPasswordResetService(f.users, f.resets, f.mails, auth)

	hash, err := auth.HashPassword("Old-passw0rd")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(&models.User{
		FullName:     "Minh Tran",
		Email:        "minh@example.com",
		PasswordHash: hash,
		Role:         authz.RoleUser,
		IsActive:     true,
	}))
	return f
}

func TestPasswordResetRequest(t *testing.T) {
	t.Run("known email stores a token and mails it", func(t *testing.T) {
		f := newResetFixture(t)
		require.NoError(t, f.svc.RequestReset("minh@example.com"))
		require.Len(t, f.mails.sent, 1)

		pr, err := f.resets.GetByToken(f.mails.sent[0])
		require.NoError(t, err)
		require.NotNil(t, pr)
		assert.Equal(t, 1, pr.UserID)
		assert.Nil(t, pr.UsedAt)
	})

	t.Run("address case and whitespace are ignored", func(t *testing.T) {
		f := newResetFixture(t)
		require.NoError(t, f.svc.RequestReset("  MINH@example.com "))
		assert.Len(t, f.mails.sent, 1)
	})

	t.Run("unknown email replies ok and mails nothing", func(t *testing.T) {
		f := newResetFixture(t)
		require.NoError(t, f.svc.RequestReset("nobody@example.com"))
		assert.Empty(t, f.mails.sent)
	})

	t.Run("smtp failure does not surface to the caller", func(t *testing.T) {
		f := newResetFixture(t)
		f.mails.failing = true
		assert.NoError(t, f.svc.RequestReset("minh@example.com"))
	})
}

func TestPasswordResetConfirm(t *testing.T) {
	issue := func(t *testing.T, f *resetFixture) string {
		t.Helper()
		require.NoError(t, f.svc.RequestReset("minh@example.com"))
		require.Len(t, f.mails.sent, 1)
		return f.mails.sent[0]
	}

	t.Run("valid token updates the password and burns the token", func(t *testing.T) {
		f := newResetFixture(t)
		token := issue(t, f)

		require.NoError(t, f.svc.ResetPassword(token, "N3w-passw0rd"))

		u, err := f.users.GetByID(1)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("N3w-passw0rd")))

		err = f.svc.ResetPassword(token, "An0ther-pass!")
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newResetFixture(t)
		err := f.svc.ResetPassword("no-such-token", "N3w-passw0rd")
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newResetFixture(t)
		_, err := f.resets.Create(1, "stale-token", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		err = f.svc.ResetPassword("stale-token", "N3w-passw0rd")
		assert.ErrorIs(t, err, ErrResetTokenInvalid)
	})

	t.Run("weak password rejected without burning the token", func(t *testing.T) {
		f := newResetFixture(t)
		token := issue(t, f)

		require.Error(t, f.svc.ResetPassword(token, "lettersonly"))
		assert.NoError(t, f.svc.ResetPassword(token, "N3w-passw0rd"))
	})

	t.Run("empty inputs rejected", func(t *testing.T) {
		f := newResetFixture(t)
		assert.Error(t, f.svc.ResetPassword("", "N3w-passw0rd"))
		assert.Error(t, f.svc.ResetPassword("some-token", "   "))
	})
}
