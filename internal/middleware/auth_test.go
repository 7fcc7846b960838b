package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobport/internal/authz"
	"jobport/internal/models"
	"jobport/internal/services"
)

// stubAuthService backs the gate with a real token service and an in-memory
// revocation set; everything the gate does not touch just errors.
type stubAuthService struct {
	tokens  services.TokenService
	revoked map[string]bool
	account any
	loadErr error
}

func (s *stubAuthService) Authenticate(models.LoginRequest) (*services.AuthResult, error) {
	return nil, errors.New("not implemented")
}
func (s *stubAuthService) AuthenticateBusiness(models.LoginRequest) (*services.AuthResult, error) {
	return nil, errors.New("not implemented")
}
func (s *stubAuthService) RefreshToken(string) (*services.RefreshResult, error) {
	return nil, errors.New("not implemented")
}
func (s *stubAuthService) Logout(string) error { return errors.New("not implemented") }
func (s *stubAuthService) HashPassword(string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthService) CheckVerifyToken(token string) (*services.TokenClaims, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, services.ErrTokenExpired
	}
	if s.revoked[token] {
		return nil, services.ErrTokenRevoked
	}
	return claims, nil
}

func (s *stubAuthService) LoadAccount(*services.TokenClaims) (any, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.account, nil
}

func newGateRouter(auth *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		RequireAccount(auth, authz.TypeAccountBusiness),
		func(c *gin.Context) {
			id, _ := getInt(c, "account_id")
			c.JSON(http.StatusOK, gin.H{"id": id})
		})
	return r
}

func getInt(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAccount(t *testing.T) {
	tokens := services.NewTokenService("a-secret", "r-secret", time.Hour, 24*time.Hour)
	business := &models.Business{ID: 7, Email: "ha@example.com", Role: authz.RoleBusiness}
	claims := services.TokenClaims{
		Email:       "ha@example.com",
		AccountID:   7,
		Role:        authz.RoleBusiness,
		TypeAccount: authz.TypeAccountBusiness,
	}
	newStub := func() *stubAuthService {
		return &stubAuthService{tokens: tokens, revoked: map[string]bool{}, account: business}
	}

	t.Run("missing header", func(t *testing.T) {
		r := newGateRouter(newStub())
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newGateRouter(newStub())
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Token abc").Code)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer").Code)
	})

	t.Run("undecodable token", func(t *testing.T) {
		r := newGateRouter(newStub())
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer not-a-token").Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := tokens.SignRefresh(claims)
		require.NoError(t, err)
		r := newGateRouter(newStub())
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+refresh).Code)
	})

	t.Run("wrong account type", func(t *testing.T) {
		normal := claims
		normal.TypeAccount = authz.TypeAccountNormal
		access, err := tokens.SignAccess(normal)
		require.NoError(t, err)
		r := newGateRouter(newStub())
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+access).Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		access, err := tokens.SignAccess(claims)
		require.NoError(t, err)
		stub := newStub()
		stub.revoked[access] = true
		r := newGateRouter(stub)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+access).Code)
	})

	t.Run("deleted account", func(t *testing.T) {
		access, err := tokens.SignAccess(claims)
		require.NoError(t, err)
		stub := newStub()
		stub.loadErr = services.ErrUserNotFound
		r := newGateRouter(stub)
		assert.Equal(t, http.StatusNotFound, doGet(r, "Bearer "+access).Code)
	})

	t.Run("expired access token", func(t *testing.T) {
		expiredTokens := services.NewTokenService("a-secret", "r-secret", -time.Minute, -time.Minute)
		access, err := expiredTokens.SignAccess(claims)
		require.NoError(t, err)
		stub := newStub()
		stub.tokens = expiredTokens
		r := newGateRouter(stub)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+access).Code)
	})

	t.Run("valid token passes with context set", func(t *testing.T) {
		access, err := tokens.SignAccess(claims)
		require.NoError(t, err)
		r := newGateRouter(newStub())
		w := doGet(r, "Bearer "+access)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7}`, w.Body.String())
	})
}
