package storage

import (
	"context"

	"gympass/pkg/domain"
)

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row as it exists in
	// the database (including generated fields). It returns an error wrapping
	// ErrDuplicateEmail when the email is already taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
