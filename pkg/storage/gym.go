package storage

import (
	"context"

	"gympass/pkg/domain"
)

// GymsPageSize is the fixed page size for gym search and check-in history.
const GymsPageSize = 20

// GymStorage defines persistence and query operations for gyms.
type GymStorage interface {
	// StoreGym inserts a new gym and returns the stored row as it exists in
	// the database (including generated fields).
	StoreGym(ctx context.Context, gym domain.Gym) (*domain.Gym, error)
	// GymByID fetches a gym by ID. Returns nil when not found.
	GymByID(ctx context.Context, id domain.GymID) (*domain.Gym, error)
	// SearchGyms returns the requested page of gyms whose title contains the
	// query, matched case-insensitively. Pages are 1-indexed, GymsPageSize
	// rows each, ordered by creation order so pagination is deterministic.
	SearchGyms(ctx context.Context, query string, page uint) ([]domain.Gym, error)
	// NearbyGyms returns the gyms within the given radius (kilometers) of the
	// coordinate, ordered by creation order.
	NearbyGyms(ctx context.Context, latitude, longitude, radiusKM float64) ([]domain.Gym, error)
}
