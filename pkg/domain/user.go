package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// User represents a registered account. Users are created once at
// registration and are immutable afterwards.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`

	// Name is the display name given at registration.
	Name string `json:"name"`
	// Email is the login identifier. It is unique across all users.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password. The plaintext
	// password is never stored.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}
