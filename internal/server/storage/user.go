package storage

import (
	"context"

	"github.com/tonesculpt/tonesculpt/internal/models"
)

// UserStorage defines interface for user credential persistence
type UserStorage interface {
	// CreateUser inserts a new user and fills user.ID with the assigned
	// identity. Uniqueness of the normalized email is enforced by the
	// storage engine itself; a duplicate insert returns ErrEmailTaken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by normalized email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}
