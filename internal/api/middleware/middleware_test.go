package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, pub := newKeyPair(t)
	otherKey, _ := newKeyPair(t)
	cfg := AuthConfig{JWTPublicKey: pub, APIKeys: []string{"k1", ""}}

	tests := []struct {
		name     string
		header   string
		success  bool
		authType string
		subject  string
	}{
		{
			name:     "valid bearer",
			header:   "Bearer " + sign(t, key, jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}),
			success:  true,
			authType: "jwt",
			subject:  "alice",
		},
		{
			name:   "expired bearer",
			header: "Bearer " + sign(t, key, jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}),
		},
		{
			name:   "signed by another key",
			header: "Bearer " + sign(t, otherKey, jwt.RegisteredClaims{Subject: "alice"}),
		},
		{
			name:     "api key",
			header:   "ApiKey k1",
			success:  true,
			authType: "apikey",
		},
		{
			name:   "empty api key is never valid",
			header: "ApiKey ",
		},
		{
			name:   "unknown scheme",
			header: "Basic dXNlcjpwYXNz",
		},
		{
			name:   "missing",
			header: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Authenticate(tt.header, cfg)
			assert.Equal(t, tt.success, result.Success)
			if !tt.success {
				assert.Error(t, result.Error)
				return
			}
			assert.Equal(t, tt.authType, result.AuthType)
			assert.Equal(t, tt.subject, result.AuthSubject)
		})
	}
}

func TestAuthenticateWithoutPublicKey(t *testing.T) {
	key, _ := newKeyPair(t)
	result := Authenticate("Bearer "+sign(t, key, jwt.RegisteredClaims{Subject: "alice"}), AuthConfig{})
	assert.False(t, result.Success)
	assert.ErrorContains(t, result.Error, "JWT public key not configured")
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 2, IdleTTL: time.Minute})
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("alice"))
	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))
	assert.True(t, limiter.Allow("bob"))

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("alice"))
	assert.False(t, limiter.Allow("alice"))

	// idle buckets are dropped
	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.Allow("carol"))
	limiter.mu.Lock()
	_, aliceKept := limiter.clients["alice"]
	limiter.mu.Unlock()
	assert.False(t, aliceKept)
}

func TestRateLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{})
	for range 100 {
		require.True(t, limiter.Allow("alice"))
	}
}

func TestLoggerRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Logger(), Recovery())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(REQUEST_ID_HEADER, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(REQUEST_ID_HEADER))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(REQUEST_ID_HEADER))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key, pub := newKeyPair(t)
	cfg := AuthConfig{JWTPublicKey: pub, APIKeys: []string{"k1"}}

	router := gin.New()
	router.POST("/admin", APIKeyAuth(cfg), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.POST("/player", Auth(cfg), func(c *gin.Context) { c.String(http.StatusOK, ActingID(c)) })

	call := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}
	bearer := "Bearer " + sign(t, key, jwt.RegisteredClaims{Subject: " alice ", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	anonymous := "Bearer " + sign(t, key, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})

	assert.Equal(t, http.StatusNoContent, call("/admin", "ApiKey k1").Code)
	assert.Equal(t, http.StatusForbidden, call("/admin", bearer).Code)
	assert.Equal(t, http.StatusUnauthorized, call("/admin", "ApiKey nope").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/admin", "").Code)

	w := call("/player", bearer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
	assert.Equal(t, http.StatusUnauthorized, call("/player", anonymous).Code)
	assert.Equal(t, http.StatusUnauthorized, call("/player", "ApiKey k1").Code)
}
