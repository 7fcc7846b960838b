package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purpose tags. A token is only good for the surface it was minted
// for: the refresh endpoint rejects access tokens and vice versa.
const (
	TokenPurposeAccess  = "access_token"
	TokenPurposeRefresh = "refresh_token"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenRevoked     = errors.New("token revoked")
)

// TokenClaims is the payload embedded into every signed token.
type TokenClaims struct {
	Email       string `json:"email"`
	AccountID   int    `json:"id"`
	IsActive    bool   `json:"is_active"`
	Role        string `json:"role"`
	Purpose     string `json:"type"`
	TypeAccount string `json:"type_account"`
	jwt.RegisteredClaims
}

type TokenService interface {
	SignAccess(claims TokenClaims) (string, error)
	SignRefresh(claims TokenClaims) (string, error)
	// Decode verifies the signature only. Expiry is embedded in the
	// returned claims and is the caller's comparison to make.
	Decode(token string) (*TokenClaims, error)
}

type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *tokenService) SignAccess(claims TokenClaims) (string, error) {
	claims.Purpose = TokenPurposeAccess
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.accessTTL))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(s.accessSecret)
}

func (s *tokenService) SignRefresh(claims TokenClaims) (string, error) {
	claims.Purpose = TokenPurposeRefresh
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.refreshTTL))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(s.refreshSecret)
}

// Decode tries the access secret first, then the refresh secret. The two
// keys are independent: forging one kind does not allow forging the other.
func (s *tokenService) Decode(tokenStr string) (*TokenClaims, error) {
	for _, secret := range [][]byte{s.accessSecret, s.refreshSecret} {
		claims := &TokenClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			// accept HMAC only
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		}, jwt.WithoutClaimsValidation())
		if err == nil && token.Valid {
			return claims, nil
		}
	}
	return nil, ErrInvalidToken
}
