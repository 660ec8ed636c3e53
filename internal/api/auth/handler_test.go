package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-app/config"
	"portfolio-app/internal/app/http/middleware"
)

func newRouter(t *testing.T, password string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	config.ADMIN_PASSWORD_HASH = string(hash)
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.POST("/api/auth/login", Login)
	session := r.Group("/api/auth")
	session.Use(middleware.AuthMiddleware())
	session.GET("/verify", Verify)
	return r
}

func login(t *testing.T, r *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(gin.H{"password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginIssuesValidToken(t *testing.T) {
	r := newRouter(t, "parola-d-ordine1")

	w := login(t, r, "parola-d-ordine1")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)

	token, err := jwt.Parse(out.Token, func(*jwt.Token) (any, error) {
		return []byte(config.JWT_SECRET), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	// and the session endpoint accepts it
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLoginWrongPassword(t *testing.T) {
	r := newRouter(t, "parola-d-ordine1")

	w := login(t, r, "sbagliata")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid password"}`, w.Body.String())
}

func TestVerifyRejectsMissingToken(t *testing.T) {
	r := newRouter(t, "parola-d-ordine1")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer non-un-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
}
