// Package auth реализует операции над учетными данными: регистрацию
// и проверку пары email/пароль.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tonesculpt/tonesculpt/internal/crypto"
	"github.com/tonesculpt/tonesculpt/internal/models"
	"github.com/tonesculpt/tonesculpt/internal/server/storage"
	"github.com/tonesculpt/tonesculpt/internal/validation"
)

// Ошибки сервиса
var (
	// ErrValidation indicates a missing or malformed email/password
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned for unknown email and for password
	// mismatch alike: the two cases must be indistinguishable to the caller
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyDigest используется при неизвестном email, чтобы путь "нет такого
// пользователя" по времени не отличался от пути "пароль не совпал"
var dummyDigest = mustDummyDigest()

func mustDummyDigest() string {
	digest, err := crypto.HashPassword("tonesculpt-timing-pad")
	if err != nil {
		panic(fmt.Sprintf("failed to build dummy digest: %v", err))
	}
	return digest
}

// Service реализует операции Credential Store поверх UserStorage
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewService создает новый credential service
func NewService(logger *slog.Logger, users storage.UserStorage) *Service {
	return &Service{
		logger: logger,
		users:  users,
	}
}

// Register нормализует email, хеширует пароль и создает пользователя.
// Возвращает storage.ErrEmailTaken, если нормализованный email уже занят:
// уникальность гарантирует constraint в хранилище, а не предварительная
// проверка, поэтому конкурентные регистрации безопасны.
func (s *Service) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	digest, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return nil, storage.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID))

	return user, nil
}

// Authenticate проверяет пару email/пароль и возвращает пользователя.
// Неизвестный email и несовпавший пароль дают один и тот же
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Выравниваем время ответа с веткой несовпавшего пароля
			crypto.VerifyPassword(password, dummyDigest)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser возвращает пользователя по идентификатору.
// storage.ErrUserNotFound пробрасывается как есть: так вызывающий отличает
// удаленную учетную запись от сбоя хранилища.
func (s *Service) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
