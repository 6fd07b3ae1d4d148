package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esneiderbravo/crehana-tasks/internal/middleware"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

const testSecret = "middleware-test-secret"

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Auth(testSecret), func(c *gin.Context) {
		claims := middleware.CurrentUser(c)
		if claims == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "no claims in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "email": claims.Email()})
	})
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthInjectsClaims(t *testing.T) {
	r := newEngine()

	token, err := util.GenerateToken(testSecret, "user-123", "ana@example.com", time.Hour)
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), "ana@example.com")
}

func TestAuthMissingHeader(t *testing.T) {
	r := newEngine()

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthMalformedHeader(t *testing.T) {
	r := newEngine()

	for _, auth := range []string{"Bearer", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		w := get(r, auth)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", auth)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	}
}

func TestAuthExpiredToken(t *testing.T) {
	r := newEngine()

	claims := &util.Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestAuthWrongSecret(t *testing.T) {
	r := newEngine()

	token, err := util.GenerateToken("some-other-secret", "user-123", "ana@example.com", time.Hour)
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
