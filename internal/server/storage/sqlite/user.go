package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tonesculpt/tonesculpt/internal/models"
	"github.com/tonesculpt/tonesculpt/internal/server/storage"
)

// Timestamps хранятся как ISO-8601 TEXT (UTC)
const timeLayout = time.RFC3339

// CreateUser inserts a new user and fills user.ID with the assigned rowid.
// Email uniqueness is enforced by the UNIQUE constraint, so concurrent
// registrations with the same email cannot both succeed.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, created_at)
		VALUES (?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		user.Email,
		user.PasswordHash,
		user.CreatedAt.UTC().Format(timeLayout),
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetUserByEmail retrieves user by normalized email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE id = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

// scanUser разбирает одну строку таблицы users
func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var createdAt string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&createdAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	user.CreatedAt = parsed

	return user, nil
}
