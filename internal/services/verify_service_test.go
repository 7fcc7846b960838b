package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobport/internal/authz"
	"jobport/internal/models"
)

func newVerifyFixture(t *testing.T) (VerifyService, *memCodeRepo, *memBlockRepo, *memBusinessRepo, *fakeEmailService, int) {
	t.Helper()
	codes := newMemCodeRepo()
	blocks := &memBlockRepo{}
	businesses := newMemBusinessRepo()
	emails := &fakeEmailService{}

	b := &models.Business{
		FullName: "Ha Nguyen",
		Email:    "ha@example.com",
		Role:     authz.RoleBusiness,
		IsActive: true,
	}
	require.NoError(t, businesses.Create(b))

	svc := NewVerifyService(codes, blocks, businesses, emails, VerifyOptions{})
	return svc, codes, blocks, businesses, emails, b.ID
}

func TestSendVerifyEmail(t *testing.T) {
	t.Run("issues a session and mails the code", func(t *testing.T) {
		svc, codes, _, _, emails, id := newVerifyFixture(t)

		sessionID, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		require.NotEmpty(t, sessionID)

		rec := codes.records[sessionID]
		require.NotNil(t, rec)
		assert.Len(t, rec.Code, 6)
		assert.Equal(t, 0, rec.FailedAttempts)
		require.Len(t, emails.sent, 1)
		assert.Equal(t, rec.Code, emails.sent[0])
	})

	t.Run("unknown business", func(t *testing.T) {
		svc, _, _, _, _, _ := newVerifyFixture(t)
		_, err := svc.SendVerifyEmail(999)
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, _, _, businesses, _, id := newVerifyFixture(t)
		require.NoError(t, businesses.SetVerifiedEmail(id, true))

		_, err := svc.SendVerifyEmail(id)
		assert.ErrorIs(t, err, ErrAlreadyVerified)
	})

	t.Run("blocked address cannot request a code", func(t *testing.T) {
		svc, codes, blocks, _, _, id := newVerifyFixture(t)
		require.NoError(t, blocks.Create("ha@example.com", 5))

		_, err := svc.SendVerifyEmail(id)
		assert.ErrorIs(t, err, ErrBlocked)
		assert.Empty(t, codes.records)
	})

	t.Run("delivery failure keeps the record", func(t *testing.T) {
		svc, codes, _, _, emails, id := newVerifyFixture(t)
		emails.failing = true

		_, err := svc.SendVerifyEmail(id)
		assert.ErrorIs(t, err, ErrSendFailed)
		// the record survives and simply expires with the freshness window
		assert.Len(t, codes.records, 1)
	})

	t.Run("each send gets its own session", func(t *testing.T) {
		svc, _, _, _, _, id := newVerifyFixture(t)

		s1, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		s2, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		assert.NotEqual(t, s1, s2)
	})
}

func TestConfirmCode(t *testing.T) {
	t.Run("correct code verifies and burns the record", func(t *testing.T) {
		svc, codes, _, businesses, _, id := newVerifyFixture(t)
		sessionID, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		code := codes.records[sessionID].Code

		require.NoError(t, svc.ConfirmCode(id, sessionID, code))

		b, _ := businesses.GetByID(id)
		assert.True(t, b.IsVerifiedEmail)
		assert.Empty(t, codes.records)

		// replay of the same session must fail: the record is gone
		err = svc.ConfirmCode(id, sessionID, code)
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, _, _, _, _, id := newVerifyFixture(t)
		err := svc.ConfirmCode(id, "no-such-session", "123456")
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("wrong guesses count up, the fifth blocks", func(t *testing.T) {
		svc, codes, blocks, businesses, _, id := newVerifyFixture(t)
		sessionID, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		code := codes.records[sessionID].Code
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}

		// four wrong guesses only bump the counter
		for i := 1; i <= 4; i++ {
			err := svc.ConfirmCode(id, sessionID, wrong)
			assert.ErrorIs(t, err, ErrCodeIncorrect)
			assert.Equal(t, i, codes.records[sessionID].FailedAttempts)
		}

		// fifth wrong guess deletes the record and blocks the address
		err = svc.ConfirmCode(id, sessionID, wrong)
		assert.ErrorIs(t, err, ErrBlocked)
		assert.Empty(t, codes.records)
		block, _ := blocks.FindActive("ha@example.com", 5*time.Minute)
		require.NotNil(t, block)
		assert.Equal(t, 5, block.WindowMinutes)

		// even the right code is refused while the block holds
		err = svc.ConfirmCode(id, sessionID, code)
		assert.ErrorIs(t, err, ErrBlocked)
		b, _ := businesses.GetByID(id)
		assert.False(t, b.IsVerifiedEmail)
	})

	t.Run("expired code is treated as missing", func(t *testing.T) {
		svc, codes, _, _, _, id := newVerifyFixture(t)
		sessionID, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)

		rec := codes.records[sessionID]
		rec.CreatedAt = time.Now().Add(-6 * time.Minute)

		err = svc.ConfirmCode(id, sessionID, rec.Code)
		assert.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("resend resets the counter by issuing a new record", func(t *testing.T) {
		svc, codes, _, _, _, id := newVerifyFixture(t)
		s1, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		wrong := "000000"
		if codes.records[s1].Code == wrong {
			wrong = "000001"
		}
		require.ErrorIs(t, svc.ConfirmCode(id, s1, wrong), ErrCodeIncorrect)

		s2, err := svc.SendVerifyEmail(id)
		require.NoError(t, err)
		assert.Equal(t, 0, codes.records[s2].FailedAttempts)

		require.NoError(t, svc.ConfirmCode(id, s2, codes.records[s2].Code))
	})
}
