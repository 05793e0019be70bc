package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cohort-tools-be/internal/jwt"
	"cohort-tools-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, jwtService *jwt.JWTService, reached *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(jwtService), func(c *gin.Context) {
		*reached = true
		claims, ok := middleware.ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, claims)
	})
	return router
}

func newTestJWTService(t *testing.T, ttl time.Duration) *jwt.JWTService {
	t.Helper()
	svc, err := jwt.NewJWTService("middleware-test-secret", ttl)
	require.NoError(t, err)
	return svc
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	var reached bool
	router := newProtectedRouter(t, newTestJWTService(t, time.Hour), &reached)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached, "handler must not run without a token")
}

func TestAuthMiddleware_BadHeaderFormat(t *testing.T) {
	var reached bool
	jwtService := newTestJWTService(t, time.Hour)
	router := newProtectedRouter(t, jwtService, &reached)

	token, err := jwtService.GenerateToken("u1", "a@b.co", "A")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	var reached bool
	jwtService := newTestJWTService(t, time.Hour)
	router := newProtectedRouter(t, jwtService, &reached)

	token, err := jwtService.GenerateToken("u1", "a@b.co", "A")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"tampered")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached)
	require.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	var reached bool
	expiredSigner := newTestJWTService(t, -1*time.Second)
	router := newProtectedRouter(t, newTestJWTService(t, time.Hour), &reached)

	token, err := expiredSigner.GenerateToken("u1", "a@b.co", "A")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, reached)
	require.Contains(t, rec.Body.String(), "Token expired")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	var reached bool
	jwtService := newTestJWTService(t, time.Hour)
	router := newProtectedRouter(t, jwtService, &reached)

	token, err := jwtService.GenerateToken("user-42", "ana@example.com", "Ana")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, reached)
	require.Contains(t, rec.Body.String(), `"_id":"user-42"`)
	require.Contains(t, rec.Body.String(), `"email":"ana@example.com"`)
}
