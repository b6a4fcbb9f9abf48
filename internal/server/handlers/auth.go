package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tonesculpt/tonesculpt/internal/auth"
	"github.com/tonesculpt/tonesculpt/internal/models"
	"github.com/tonesculpt/tonesculpt/internal/server/storage"
	"github.com/tonesculpt/tonesculpt/internal/validation"
	"github.com/tonesculpt/tonesculpt/pkg/api"
)

// AuthService определяет операции над учетными данными
type AuthService interface {
	// Register создает пользователя; storage.ErrEmailTaken при занятом email
	Register(ctx context.Context, email, password string) (*models.User, error)

	// Authenticate проверяет пару email/пароль;
	// auth.ErrInvalidCredentials при любом несовпадении
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// GetUser возвращает пользователя по идентификатору;
	// storage.ErrUserNotFound, если учетной записи больше нет
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger    *slog.Logger
	auth      AuthService
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, authService AuthService, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		auth:      authService,
		jwtConfig: jwtConfig,
	}
}

// Register обрабатывает POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrValidation):
			sendError(h.logger, w, "email and password required", http.StatusBadRequest)
		case errors.Is(err, storage.ErrEmailTaken):
			h.logger.WarnContext(ctx, "registration with taken email")
			sendError(h.logger, w, "email already registered", http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.Int64("user_id", user.ID))

	sendJSON(h.logger, w, api.RegisterResponse{Message: "registered"}, http.StatusCreated)
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if validation.NormalizeEmail(req.Email) == "" || req.Password == "" {
		sendError(h.logger, w, "email and password required", http.StatusBadRequest)
		return
	}

	user, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to authenticate user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.Int64("user_id", user.ID))

	sendJSON(h.logger, w, api.TokenResponse{Token: token}, http.StatusOK)
}

// Me обрабатывает GET /auth/me
// Subject берется из валидированного токена (кладет AuthMiddleware), после
// чего подтверждается, что учетная запись все еще существует: валидный токен
// удаленного пользователя дает 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "user id not found in context")
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.auth.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "token subject no longer exists",
				slog.Int64("user_id", userID))
			sendError(h.logger, w, "invalid or expired token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.MeResponse{
		User: api.UserInfo{
			ID:    user.ID,
			Email: user.Email,
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
