package gyms

import (
	"context"
	"fmt"

	"gympass/pkg/domain"
	"gympass/pkg/serrors"
	"gympass/pkg/storage"
)

// NearbyRadiusKM is the search radius used when listing gyms around a
// coordinate.
const NearbyRadiusKM = 10.0

// ValidateCoordinate checks that a latitude/longitude pair is within the
// valid WGS84 ranges.
func ValidateCoordinate(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return serrors.With(serrors.ErrBadRequest, "latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return serrors.With(serrors.ErrBadRequest, "longitude must be between -180 and 180")
	}

	return nil
}

// gyms is the concrete implementation of the Gyms interface.
type gyms struct {
	// storage is the persistence layer used to store and query gyms.
	storage storage.Storage
}

// Create registers a new gym after validating its coordinates. The ID and
// creation timestamp of the returned gym are assigned by the storage layer.
func (g gyms) Create(ctx context.Context, gym domain.Gym) (*domain.Gym, error) {
	if gym.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if err := ValidateCoordinate(gym.Latitude, gym.Longitude); err != nil {
		return nil, err
	}

	stored, err := g.storage.StoreGym(ctx, gym)
	if err != nil {
		return nil, fmt.Errorf("could not store gym: %w", err)
	}

	return stored, nil
}

// Search returns the requested page of gyms whose title matches the query,
// case-insensitively. Pages are 1-indexed and fixed-size; a page past the end
// of the results is empty, not an error.
func (g gyms) Search(ctx context.Context, query string, page uint) ([]domain.Gym, error) {
	if page < 1 {
		return nil, serrors.With(serrors.ErrBadRequest, "page must be at least 1")
	}

	res, err := g.storage.SearchGyms(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("could not search gyms: %w", err)
	}

	return res, nil
}

// Nearby returns the gyms within NearbyRadiusKM of the given coordinate.
func (g gyms) Nearby(ctx context.Context, latitude, longitude float64) ([]domain.Gym, error) {
	if err := ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}

	res, err := g.storage.NearbyGyms(ctx, latitude, longitude, NearbyRadiusKM)
	if err != nil {
		return nil, fmt.Errorf("could not get nearby gyms: %w", err)
	}

	return res, nil
}

// New creates a new Gyms instance backed by the provided storage.
func New(storage storage.Storage) Gyms {
	return &gyms{
		storage: storage,
	}
}
