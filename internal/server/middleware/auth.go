package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tonesculpt/tonesculpt/internal/server/handlers"
	"github.com/tonesculpt/tonesculpt/pkg/api"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Любой дефект токена (подпись, формат, срок) дает один и тот же 401.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header")
				sendUnauthorized(w, "missing bearer token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				sendUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("invalid access token")
				sendUnauthorized(w, "invalid or expired token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.Warn("invalid subject claim")
				sendUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sendUnauthorized отправляет 401 с JSON телом
func sendUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	// Тело фиксированной формы, ошибки кодирования некритичны
	resp, _ := json.Marshal(api.ErrorResponse{Error: message})
	_, _ = w.Write(resp)
}
