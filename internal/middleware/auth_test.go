package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framelight/internal/pkg/jwt"
)

func setupAuthRouter(j *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(j), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/admin", JWTAuth(j), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.False(t, payload.Success)
	return payload.Error.Code
}

func TestJWTAuth_ValidToken(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	token, err := j.GenerateToken(42, "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.UserID)
	assert.Equal(t, "client", body.Role)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_HEADER_MISSING", errorCode(t, w.Body.Bytes()))
}

func TestJWTAuth_WrongScheme(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_AUTH_FORMAT", errorCode(t, w.Body.Bytes()))
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, w.Body.Bytes()))
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	signer := jwt.New("other-secret", time.Hour)
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	token, err := signer.GenerateToken(42, "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, w.Body.Bytes()))
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	j := jwt.New("test-secret", -time.Minute)
	r := setupAuthRouter(j)

	token, err := j.GenerateToken(42, "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, w.Body.Bytes()))
}

func TestAdminOnly_ClientForbidden(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	token, err := j.GenerateToken(42, "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w.Body.Bytes()))
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(j)

	token, err := j.GenerateToken(1, "admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
