package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckInID uniquely identifies a check-in.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CheckInID uuid.UUID

// CheckIn is a record asserting a user was physically present at a gym at a
// given time. A user can hold at most one check-in per UTC calendar day.
type CheckIn struct {
	// ID is the unique identifier of the check-in.
	ID CheckInID `json:"id"`
	// UserID is the user who checked in.
	UserID UserID `json:"userId"`
	// GymID is the gym the user checked in at.
	GymID GymID `json:"gymId"`

	// CreatedAt is the instant the check-in was recorded. It is immutable.
	CreatedAt time.Time `json:"createdAt"`
	// ValidatedAt is the instant a gym operator confirmed the check-in.
	// The zero value means the check-in has not been validated.
	ValidatedAt time.Time `json:"validatedAt,omitzero"`
}

// Validated reports whether the check-in has been confirmed by an operator.
func (c CheckIn) Validated() bool { return !c.ValidatedAt.IsZero() }
