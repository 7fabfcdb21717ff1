package gyms

import (
	"context"

	"gympass/pkg/domain"
)

//go:generate mockgen -package mockgyms -source=interface.go -destination=mock/mockgyms.go *
type Gyms interface {
	Create(ctx context.Context, gym domain.Gym) (*domain.Gym, error)
	Search(ctx context.Context, query string, page uint) ([]domain.Gym, error)
	Nearby(ctx context.Context, latitude, longitude float64) ([]domain.Gym, error)
}
