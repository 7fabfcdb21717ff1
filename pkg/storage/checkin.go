package storage

import (
	"context"
	"time"

	"gympass/pkg/domain"
)

// CheckInStorage defines persistence and query operations for check-ins.
type CheckInStorage interface {
	// StoreCheckIn inserts a new check-in and returns the stored row as it
	// exists in the database (including generated fields). It returns an
	// error wrapping ErrDuplicateDailyCheckIn when the user already has a
	// check-in for that calendar day.
	StoreCheckIn(ctx context.Context, checkIn domain.CheckIn) (*domain.CheckIn, error)
	// CheckInByID fetches a check-in by ID. Returns nil when not found.
	CheckInByID(ctx context.Context, id domain.CheckInID) (*domain.CheckIn, error)
	// CheckInByUserOnDate returns the user's check-in whose creation instant
	// falls inside [dayStart, dayEnd), or nil when there is none. Callers
	// pass the calendar-day boundaries; the storage layer does not decide
	// time zone policy.
	CheckInByUserOnDate(ctx context.Context, userID domain.UserID, dayStart, dayEnd time.Time) (*domain.CheckIn, error)
	// CheckInsByUser returns the requested page of the user's check-ins.
	// Pages are 1-indexed, GymsPageSize rows each, ordered by creation order.
	CheckInsByUser(ctx context.Context, userID domain.UserID, page uint) ([]domain.CheckIn, error)
	// CountCheckInsByUser returns the total number of check-ins recorded for
	// the user. Zero for a user with no check-ins.
	CountCheckInsByUser(ctx context.Context, userID domain.UserID) (int64, error)
	// SetCheckInValidated marks the check-in as validated at the given
	// instant and returns the updated row, or nil when the check-in does not
	// exist.
	SetCheckInValidated(ctx context.Context, id domain.CheckInID, at time.Time) (*domain.CheckIn, error)
}
