package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"jobport/internal/repositories"
	"jobport/internal/utils"
)

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrAlreadyVerified  = errors.New("email is verified")
	ErrBlocked          = errors.New("verification blocked, please wait before retrying")
	ErrSendFailed       = errors.New("send email failed")
	ErrCodeNotFound     = errors.New("verify code not found")
	ErrCodeIncorrect    = errors.New("verify code is incorrect")
)

// Defaults match the config fallbacks: 6-digit codes, 5-minute freshness,
// 5-minute block after the 5th wrong guess.
const (
	defaultCodeLength       = 6
	defaultFreshnessMinutes = 5
	defaultBlockMinutes     = 5
	defaultMaxFailedBefore  = 4
)

type VerifyService interface {
	// SendVerifyEmail issues a new code for the business's email and returns
	// the session id the client must present at confirmation. The code
	// itself never leaves the server except inside the email.
	SendVerifyEmail(businessID int) (sessionID string, err error)
	// ConfirmCode validates a guess against the pending record. Wrong
	// guesses increment the attempt counter; the fifth wrong guess deletes
	// the record and blocks the address for the cooldown window.
	ConfirmCode(businessID int, sessionID, code string) error
}

type verifyService struct {
	codes      repositories.VerifyCodeRepository
	blocks     repositories.VerifyBlockRepository
	businesses repositories.BusinessRepository
	emails     EmailService

	codeLength      int
	freshness       time.Duration
	blockWindow     time.Duration
	blockMinutes    int
	maxFailedBefore int
}

type VerifyOptions struct {
	CodeLength       int
	FreshnessMinutes int
	BlockMinutes     int
	MaxFailedBefore  int
}

func NewVerifyService(
	codes repositories.VerifyCodeRepository,
	blocks repositories.VerifyBlockRepository,
	businesses repositories.BusinessRepository,
	emails EmailService,
	opts VerifyOptions,
) VerifyService {
	if opts.CodeLength <= 0 {
		opts.CodeLength = defaultCodeLength
	}
	if opts.FreshnessMinutes <= 0 {
		opts.FreshnessMinutes = defaultFreshnessMinutes
	}
	if opts.BlockMinutes <= 0 {
		opts.BlockMinutes = defaultBlockMinutes
	}
	if opts.MaxFailedBefore <= 0 {
		opts.MaxFailedBefore = defaultMaxFailedBefore
	}
	return &verifyService{
		codes:           codes,
		blocks:          blocks,
		businesses:      businesses,
		emails:          emails,
		codeLength:      opts.CodeLength,
		freshness:       time.Duration(opts.FreshnessMinutes) * time.Minute,
		blockWindow:     time.Duration(opts.BlockMinutes) * time.Minute,
		blockMinutes:    opts.BlockMinutes,
		maxFailedBefore: opts.MaxFailedBefore,
	}
}

func (s *verifyService) SendVerifyEmail(businessID int) (string, error) {
	business, err := s.businesses.GetByID(businessID)
	if err != nil {
		return "", err
	}
	if business == nil {
		return "", ErrBusinessNotFound
	}
	if business.IsVerifiedEmail {
		return "", ErrAlreadyVerified
	}

	block, err := s.blocks.FindActive(business.Email, s.blockWindow)
	if err != nil {
		return "", err
	}
	if block != nil {
		return "", ErrBlocked
	}

	code, err := utils.GenerateCode(s.codeLength)
	if err != nil {
		return "", err
	}
	sessionID := uuid.NewString()

	if _, err := s.codes.Create(businessID, business.Email, code, sessionID); err != nil {
		return "", err
	}

	// The record stays even if delivery fails: it expires on its own in the
	// freshness window and a retry issues a fresh session id.
	if err := s.emails.SendVerifyEmail(business.Email, business.FullName, code); err != nil {
		log.Printf("[verify][send] email delivery failed: business_id=%d err=%v", businessID, err)
		return "", ErrSendFailed
	}

	log.Printf("[verify][send] ok: business_id=%d email=%s session=%s", businessID, business.Email, sessionID)
	return sessionID, nil
}

func (s *verifyService) ConfirmCode(businessID int, sessionID, code string) error {
	business, err := s.businesses.GetByID(businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}

	block, err := s.blocks.FindActive(business.Email, s.blockWindow)
	if err != nil {
		return err
	}
	if block != nil {
		return ErrBlocked
	}

	rec, err := s.codes.GetValid(sessionID, business.Email, s.freshness)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrCodeNotFound
	}

	if rec.Code != code {
		if rec.FailedAttempts >= s.maxFailedBefore {
			// fifth wrong guess: burn the record and block the address
			if err := s.codes.Delete(rec.ID); err != nil {
				return err
			}
			if err := s.blocks.Create(business.Email, s.blockMinutes); err != nil {
				return err
			}
			log.Printf("[verify][confirm] blocked: business_id=%d email=%s", businessID, business.Email)
			return ErrBlocked
		}
		if _, err := s.codes.IncrementFailedAttempts(rec.ID); err != nil {
			return err
		}
		return ErrCodeIncorrect
	}

	if err := s.codes.Delete(rec.ID); err != nil {
		return err
	}
	if err := s.businesses.SetVerifiedEmail(businessID, true); err != nil {
		return err
	}
	log.Printf("[verify][confirm] ok: business_id=%d email=%s", businessID, business.Email)
	return nil
}
