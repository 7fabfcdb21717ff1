package domain

import (
	"time"

	"github.com/google/uuid"
)

// GymID uniquely identifies a gym.
// It wraps uuid.UUID to provide type safety at the domain layer.
type GymID uuid.UUID

// Gym represents a registered gym. Gyms are created once and are read-only
// afterwards.
type Gym struct {
	// ID is the unique identifier of the gym.
	ID GymID `json:"id"`

	// Title is the gym's display name.
	Title string `json:"title"`
	// Description is optional free-form text about the gym.
	Description string `json:"description,omitempty"`
	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Latitude and Longitude are the gym's position in signed decimal
	// degrees. The storage layer persists them as fixed-point NUMERIC
	// columns.
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// CreatedAt is the time the gym was registered.
	CreatedAt time.Time `json:"createdAt"`
}
