package models

import "time"

// User представляет учетную запись в системе
type User struct {
	ID           int64     `json:"id"`         // автоинкрементный идентификатор
	Email        string    `json:"email"`      // нормализованный (lowercase) email
	PasswordHash string    `json:"-"`          // versioned digest: scheme$salt$hash
	CreatedAt    time.Time `json:"created_at"` // время создания (UTC)
}
