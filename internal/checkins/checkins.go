package checkins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gympass/pkg/domain"
	"gympass/pkg/geo"
	"gympass/pkg/metrics"
	"gympass/pkg/serrors"
	"gympass/pkg/storage"
)

const (
	// MaxDistanceKM is the geofence radius around a gym within which a
	// check-in is accepted.
	MaxDistanceKM = 0.1

	// ValidationWindow is how long after creation a check-in can still be
	// validated by staff.
	ValidationWindow = 20 * time.Minute
)

// Options configure the check-in service.
type Options struct {
	// Now returns the current instant. Defaults to time.Now; tests inject a
	// fixed clock to exercise day boundaries and the validation window.
	Now func() time.Time
}

// checkIns is the concrete implementation of the CheckIns interface. It
// coordinates the geofence and daily-limit rules with the storage layer and
// schedules a watch job for each created check-in.
type checkIns struct {
	// options holds the injected clock.
	options Options
	// storage is the persistence layer used to store and query check-ins.
	storage storage.Storage
}

// utcDayBounds returns the start (inclusive) and end (exclusive) of the UTC
// calendar day containing t. All daily-limit decisions use UTC days so that
// the window does not move with server or client locale.
func utcDayBounds(t time.Time) (time.Time, time.Time) {
	utc := t.UTC()
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 0, 1)
}

// CheckIn records the user's presence at the gym. The gym must exist, the
// user must be within MaxDistanceKM of it, and the user must not already have
// a check-in on the same UTC calendar day. The rules are checked in that
// order, so a far-away request against a fresh gym reports the distance
// violation rather than the daily limit.
func (c checkIns) CheckIn(ctx context.Context,
	userID domain.UserID,
	gymID domain.GymID,
	latitude, longitude float64) (*domain.CheckIn, error) {
	gym, err := c.storage.GymByID(ctx, gymID)
	if err != nil {
		return nil, fmt.Errorf("could not get gym: %w", err)
	}
	if gym == nil {
		return nil, serrors.With(serrors.ErrNotFound, "gym not found")
	}

	distance := geo.Distance(
		geo.Coordinate{Latitude: latitude, Longitude: longitude},
		geo.Coordinate{Latitude: gym.Latitude, Longitude: gym.Longitude},
	)
	if distance > MaxDistanceKM {
		return nil, serrors.With(serrors.ErrMaxDistance, "too far from the gym")
	}

	now := c.options.Now().UTC()
	dayStart, dayEnd := utcDayBounds(now)
	existing, err := c.storage.CheckInByUserOnDate(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("could not get check-in on date: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrMaxCheckIns, "already checked in today")
	}

	var checkIn *domain.CheckIn
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreCheckIn(ctx, domain.CheckIn{
			UserID:    userID,
			GymID:     gymID,
			CreatedAt: now,
		})
		if err != nil {
			// a concurrent check-in on the same day trips the unique index
			if errors.Is(err, storage.ErrDuplicateDailyCheckIn) {
				return serrors.Wrap(serrors.ErrMaxCheckIns, err, "already checked in today")
			}

			return fmt.Errorf("could not store check-in: %w", err)
		}
		checkIn = stored

		if _, err := tx.AddJob(ctx, WatchJobArgs{
			CheckInID:   stored.ID,
			scheduledAt: stored.CreatedAt.Add(ValidationWindow),
		}, nil); err != nil {
			return fmt.Errorf("could not add watch job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not check in: %w", err)
	}
	metrics.RecordCheckInCreated()

	return checkIn, nil
}

// Validate marks a check-in as validated by staff. Validation must happen
// within ValidationWindow of the check-in's creation; afterwards the check-in
// can no longer be confirmed. Validating twice is a conflict.
func (c checkIns) Validate(ctx context.Context, checkInID domain.CheckInID) (*domain.CheckIn, error) {
	checkIn, err := c.storage.CheckInByID(ctx, checkInID)
	if err != nil {
		return nil, fmt.Errorf("could not get check-in: %w", err)
	}
	if checkIn == nil {
		return nil, serrors.With(serrors.ErrNotFound, "check-in not found")
	}
	if checkIn.Validated() {
		return nil, serrors.With(serrors.ErrConflict, "check-in already validated")
	}

	now := c.options.Now().UTC()
	if now.Sub(checkIn.CreatedAt) > ValidationWindow {
		return nil, serrors.With(serrors.ErrLateValidation, "validation window has closed")
	}

	validated, err := c.storage.SetCheckInValidated(ctx, checkInID, now)
	if err != nil {
		return nil, fmt.Errorf("could not validate check-in: %w", err)
	}
	if validated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "check-in not found")
	}

	return validated, nil
}

// History returns the requested page of the user's check-ins, oldest first.
// Pages are 1-indexed and fixed-size; a page past the end is empty.
func (c checkIns) History(ctx context.Context, userID domain.UserID, page uint) ([]domain.CheckIn, error) {
	if page < 1 {
		return nil, serrors.With(serrors.ErrBadRequest, "page must be at least 1")
	}

	res, err := c.storage.CheckInsByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("could not get check-in history: %w", err)
	}

	return res, nil
}

// UserMetrics returns the total number of check-ins the user has made. A user
// with no check-ins gets zero, not an error.
func (c checkIns) UserMetrics(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := c.storage.CountCheckInsByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("could not count check-ins: %w", err)
	}

	return count, nil
}

// New creates a new CheckIns instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) CheckIns {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &checkIns{
		options: options,
		storage: storage,
	}
}
