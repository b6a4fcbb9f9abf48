package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that user with this email already exists
	ErrEmailTaken = errors.New("email already registered")
)
