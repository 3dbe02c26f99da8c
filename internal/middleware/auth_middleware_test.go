package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"leavehub/internal/middleware"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

type capturedIdentity struct {
	userID   string
	username string
	role     string
}

func setupAuthRouter(captured *capturedIdentity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(), func(c *gin.Context) {
		captured.userID = c.GetString(middleware.ContextUserID)
		captured.username = c.GetString(middleware.ContextUsername)
		captured.role = c.GetString(middleware.ContextRole)
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	userID := uuid.New().String()
	validClaims := jwt.MapClaims{
		"user_id":  userID,
		"username": "alice",
		"role":     "EMPLOYEE",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	t.Run("success bearer token populates identity", func(t *testing.T) {
		var captured capturedIdentity
		router := setupAuthRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", validClaims))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, captured.userID)
		assert.Equal(t, "alice", captured.username)
		assert.Equal(t, "EMPLOYEE", captured.role)
	})

	t.Run("success cookie fallback", func(t *testing.T) {
		var captured capturedIdentity
		router := setupAuthRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, "test-secret", validClaims)})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, captured.userID)
	})

	t.Run("negative missing token", func(t *testing.T) {
		var captured capturedIdentity
		router := setupAuthRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, captured.userID)
	})

	t.Run("negative expired token", func(t *testing.T) {
		var captured capturedIdentity
		router := setupAuthRouter(&captured)

		expired := jwt.MapClaims{
			"user_id":  userID,
			"username": "alice",
			"role":     "EMPLOYEE",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		}
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", expired))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("negative wrong signing key", func(t *testing.T) {
		var captured capturedIdentity
		router := setupAuthRouter(&captured)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", validClaims))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("negative token without role claim", func(t *testing.T) {
		var captured capturedIdentity
		router := setupAuthRouter(&captured)

		noRole := jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		}
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", noRole))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
