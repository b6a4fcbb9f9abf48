package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonesculpt/tonesculpt/internal/server/handlers"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret"),
		AccessTokenTTL: 120 * time.Minute,
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()

	token, err := handlers.GenerateAccessToken(cfg, 42, "a@b.com")
	require.NoError(t, err)

	var gotUserID int64
	var called bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = handlers.GetUserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	AuthMiddleware(setupTestLogger(), cfg)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuthMiddleware_Unauthorized(t *testing.T) {
	cfg := testJWTConfig()

	expiredCfg := handlers.JWTConfig{Secret: cfg.Secret, AccessTokenTTL: -time.Minute}
	expiredToken, err := handlers.GenerateAccessToken(expiredCfg, 1, "a@b.com")
	require.NoError(t, err)

	otherCfg := handlers.JWTConfig{Secret: []byte("other-secret"), AccessTokenTTL: time.Hour}
	foreignToken, err := handlers.GenerateAccessToken(otherCfg, 1, "a@b.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"wrong secret", "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not be called")
			})

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			AuthMiddleware(setupTestLogger(), cfg)(next).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}
