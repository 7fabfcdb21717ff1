package checkins

import (
	"context"

	"gympass/pkg/domain"
)

//go:generate mockgen -package mockcheckins -source=interface.go -destination=mock/mockcheckins.go *
type CheckIns interface {
	CheckIn(ctx context.Context,
		userID domain.UserID,
		gymID domain.GymID,
		latitude, longitude float64) (*domain.CheckIn, error)
	Validate(ctx context.Context, checkInID domain.CheckInID) (*domain.CheckIn, error)
	History(ctx context.Context, userID domain.UserID, page uint) ([]domain.CheckIn, error)
	UserMetrics(ctx context.Context, userID domain.UserID) (int64, error)
}
