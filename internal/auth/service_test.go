package auth

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonesculpt/tonesculpt/internal/models"
	"github.com/tonesculpt/tonesculpt/internal/server/storage"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // email -> User
	nextID      int64
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrEmailTaken
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func TestService_Register_Success(t *testing.T) {
	ctx := context.Background()
	users := newMockUserStorage()
	svc := NewService(setupTestLogger(), users)

	user, err := svc.Register(ctx, "A@B.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@b.com", user.Email, "email must be stored normalized")
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupTestLogger(), newMockUserStorage())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "password"},
		{"whitespace email", "   ", "password"},
		{"empty password", "a@b.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_Register_PlainUsernameAccepted(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupTestLogger(), newMockUserStorage())

	// Формат email не проверяется: любая непустая строка регистрируется
	// и проходит аутентификацию
	registered, err := svc.Register(ctx, "justausername", "pw")
	require.NoError(t, err)
	assert.Equal(t, "justausername", registered.Email)

	authenticated, err := svc.Authenticate(ctx, "justausername", "pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, authenticated.ID)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupTestLogger(), newMockUserStorage())

	_, err := svc.Register(ctx, "a@b.com", "password1")
	require.NoError(t, err)

	// Вариации регистра и пробелов нормализуются к тому же email
	for _, email := range []string{"a@b.com", "A@B.COM", "  a@b.com  "} {
		_, err = svc.Register(ctx, email, "password2")
		assert.ErrorIs(t, err, storage.ErrEmailTaken, "email %q", email)
	}
}

func TestService_RegisterAuthenticate_Roundtrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupTestLogger(), newMockUserStorage())

	registered, err := svc.Register(ctx, "user@example.com", "secret-pass")
	require.NoError(t, err)

	authenticated, err := svc.Authenticate(ctx, "User@Example.COM ", "secret-pass")
	require.NoError(t, err)

	assert.Equal(t, registered.ID, authenticated.ID)
	assert.Equal(t, registered.Email, authenticated.Email)
}

func TestService_Authenticate_UniformError(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupTestLogger(), newMockUserStorage())

	_, err := svc.Register(ctx, "known@example.com", "right-password")
	require.NoError(t, err)

	// Неизвестный email и неверный пароль неразличимы для вызывающего
	_, errUnknown := svc.Authenticate(ctx, "unknown@example.com", "whatever")
	_, errWrongPass := svc.Authenticate(ctx, "known@example.com", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestService_GetUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(setupTestLogger(), newMockUserStorage())

	registered, err := svc.Register(ctx, "a@b.com", "password")
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	_, err = svc.GetUser(ctx, registered.ID+1000)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestService_Authenticate_StorageError(t *testing.T) {
	ctx := context.Background()
	users := newMockUserStorage()
	users.getError = assert.AnError
	svc := NewService(setupTestLogger(), users)

	_, err := svc.Authenticate(ctx, "a@b.com", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
