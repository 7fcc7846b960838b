package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jobport/internal/authz"
	"jobport/internal/models"
	"jobport/internal/repositories"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// AuthResult is what a successful login returns.
type AuthResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         any    `json:"user"`
}

// RefreshResult carries the new access token after a refresh.
type RefreshResult struct {
	AccessToken string `json:"access_token"`
	User        any    `json:"user"`
}

type AuthService interface {
	// Authenticate checks user credentials and issues an access/refresh
	// pair tagged with the normal account type.
	Authenticate(req models.LoginRequest) (*AuthResult, error)
	// AuthenticateBusiness does the same against business/admin accounts.
	AuthenticateBusiness(req models.LoginRequest) (*AuthResult, error)
	// RefreshToken accepts a refresh-purposed bearer token and mints a new
	// access token for the embedded account.
	RefreshToken(bearer string) (*RefreshResult, error)
	// Logout blacklists the bearer token. Repeat calls are no-ops.
	Logout(bearer string) error
	// CheckVerifyToken decodes and fully validates a token: signature,
	// embedded expiry, blacklist.
	CheckVerifyToken(token string) (*TokenClaims, error)
	// LoadAccount resolves the claims back to a live account record.
	LoadAccount(claims *TokenClaims) (any, error)

	HashPassword(plain string) (string, error)
}

type authService struct {
	users      repositories.UserRepository
	businesses repositories.BusinessRepository
	blacklist  repositories.BlacklistRepository
	tokens     TokenService
}

func NewAuthService(
	users repositories.UserRepository,
	businesses repositories.BusinessRepository,
	blacklist repositories.BlacklistRepository,
	tokens TokenService,
) AuthService {
	return &authService{
		users:      users,
		businesses: businesses,
		blacklist:  blacklist,
		tokens:     tokens,
	}
}

func (s *authService) HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s *authService) Authenticate(req models.LoginRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrIncorrectPassword
	}

	claims := TokenClaims{
		Email:       user.Email,
		AccountID:   user.ID,
		IsActive:    user.IsActive,
		Role:        user.Role,
		TypeAccount: authz.TypeAccountNormal,
	}
	access, err := s.tokens.SignAccess(claims)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.SignRefresh(claims)
	if err != nil {
		return nil, err
	}
	if err := s.users.TouchLastLogin(user.ID); err != nil {
		log.Printf("[auth][login] touch last_login failed: user_id=%d err=%v", user.ID, err)
	}

	log.Printf("[auth][login] success user_id=%d role=%s", user.ID, user.Role)
	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func (s *authService) AuthenticateBusiness(req models.LoginRequest) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	business, err := s.businesses.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrIncorrectPassword
	}

	claims := TokenClaims{
		Email:       business.Email,
		AccountID:   business.ID,
		IsActive:    business.IsActive,
		Role:        business.Role,
		TypeAccount: authz.TypeAccountBusiness,
	}
	access, err := s.tokens.SignAccess(claims)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.SignRefresh(claims)
	if err != nil {
		return nil, err
	}
	if err := s.businesses.TouchLastLogin(business.ID); err != nil {
		log.Printf("[auth][login] touch last_login failed: business_id=%d err=%v", business.ID, err)
	}

	log.Printf("[auth][login] success business_id=%d role=%s", business.ID, business.Role)
	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: business}, nil
}

func (s *authService) RefreshToken(bearer string) (*RefreshResult, error) {
	claims, err := s.tokens.Decode(bearer)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != TokenPurposeRefresh {
		return nil, ErrInvalidTokenType
	}
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	newClaims := TokenClaims{
		Email:       claims.Email,
		IsActive:    claims.IsActive,
		Role:        claims.Role,
		TypeAccount: claims.TypeAccount,
	}

	switch claims.TypeAccount {
	case authz.TypeAccountBusiness:
		business, err := s.businesses.GetByEmail(claims.Email)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, ErrUserNotFound
		}
		newClaims.AccountID = business.ID
		newClaims.IsActive = business.IsActive
		newClaims.Role = business.Role
		access, err := s.tokens.SignAccess(newClaims)
		if err != nil {
			return nil, err
		}
		return &RefreshResult{AccessToken: access, User: business}, nil
	default:
		user, err := s.users.GetByEmail(claims.Email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		newClaims.AccountID = user.ID
		newClaims.IsActive = user.IsActive
		newClaims.Role = user.Role
		access, err := s.tokens.SignAccess(newClaims)
		if err != nil {
			return nil, err
		}
		return &RefreshResult{AccessToken: access, User: user}, nil
	}
}

func (s *authService) Logout(bearer string) error {
	// Store the embedded expiry so the blacklist can prune itself once the
	// token would have died anyway. Undecodable tokens get a day.
	expiresAt := time.Now().Add(24 * time.Hour)
	if claims, err := s.tokens.Decode(bearer); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.blacklist.Create(bearer, expiresAt)
}

func (s *authService) LoadAccount(claims *TokenClaims) (any, error) {
	switch claims.TypeAccount {
	case authz.TypeAccountBusiness:
		business, err := s.businesses.GetByID(claims.AccountID)
		if err != nil {
			return nil, err
		}
		if business == nil {
			return nil, ErrUserNotFound
		}
		return business, nil
	default:
		user, err := s.users.GetByID(claims.AccountID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrUserNotFound
		}
		return user, nil
	}
}

func (s *authService) CheckVerifyToken(token string) (*TokenClaims, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	revoked, err := s.blacklist.Exists(token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}
