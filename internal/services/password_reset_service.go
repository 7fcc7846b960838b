package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"jobport/internal/repositories"
	"jobport/internal/utils"
)

var ErrResetTokenInvalid = errors.New("invalid or expired token")

// resetTokenTTL is how long a reset link stays usable after it is mailed.
const resetTokenTTL = 1 * time.Hour

type PasswordResetService interface {
	RequestReset(email string) error
	ResetPassword(token, newPassword string) error
}

type passwordResetService struct {
	userRepo repositories.UserRepository
	repo     repositories.PasswordResetRepository
	emails   EmailService
	auth     AuthService
}

func NewPasswordResetService(userRepo repositories.UserRepository, repo repositories.PasswordResetRepository, emails EmailService, auth AuthService) PasswordResetService {
	return &passwordResetService{
		userRepo: userRepo,
		repo:     repo,
		emails:   emails,
		auth:     auth,
	}
}

// RequestReset mints an opaque token for the account and mails it. The
// response is identical whether or not the address is registered, so the
// endpoint cannot be used to enumerate accounts.
func (s *passwordResetService) RequestReset(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return errors.New("email is required")
	}
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		log.Printf("[reset][request] no account for %q (err=%v), replying ok anyway", email, err)
		return nil
	}

	token, err := utils.NewOpaqueToken(32)
	if err != nil {
		return err
	}
	if _, err := s.repo.Create(user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	if s.emails != nil {
		if err := s.emails.SendPasswordResetEmail(user.Email, token); err != nil {
			// the token row is already stored; a retry of the request will mint a fresh one
			log.Printf("[reset][request] mail to %s failed: %v", user.Email, err)
		}
	}
	log.Printf("[reset][request] token issued user_id=%d", user.ID)
	return nil
}

// ResetPassword burns the token and stores the new password hash. Unknown,
// used and expired tokens all collapse into ErrResetTokenInvalid.
func (s *passwordResetService) ResetPassword(token, newPassword string) error {
	token = strings.TrimSpace(token)
	newPassword = strings.TrimSpace(newPassword)
	if token == "" || newPassword == "" {
		return errors.New("token and password are required")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	pr, err := s.repo.GetByToken(token)
	if err != nil || pr == nil {
		return ErrResetTokenInvalid
	}
	if pr.UsedAt != nil || time.Now().After(pr.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	hash, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(pr.UserID, hash); err != nil {
		return err
	}
	if err := s.repo.MarkUsed(pr.ID); err != nil {
		return err
	}
	log.Printf("[reset][confirm] password updated user_id=%d", pr.UserID)
	return nil
}
