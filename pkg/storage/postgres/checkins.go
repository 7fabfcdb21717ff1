package postgres

import (
	"context"
	"fmt"
	"time"

	"gympass/pkg/domain"
	"gympass/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const checkInsTable = "check_ins"

// checkInColumns lists the columns scanned into PgCheckIn. The generated
// created_day column is excluded; it exists only for the daily unique index.
//
//nolint: gochecknoglobals
var checkInColumns = []interface{}{"id", "seq", "user_id", "gym_id", "created_at", "validated_at"}

// StoreCheckIn inserts a new check-in. A unique violation on the per-day
// index is mapped to storage.ErrDuplicateDailyCheckIn; the index is what
// keeps two concurrent check-ins for the same user and day from both landing.
func (p *PgSQL) StoreCheckIn(ctx context.Context, checkIn domain.CheckIn) (*domain.CheckIn, error) {
	var pgCheckIn PgCheckIn
	pgCheckIn.FromDomain(checkIn)

	var row PgCheckIn
	found, err := p.Builder.Insert(checkInsTable).
		Rows(pgCheckIn).
		Returning(&PgCheckIn{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("storing check-in for user %s: %w",
				uuid.UUID(checkIn.UserID), storage.ErrDuplicateDailyCheckIn)
		}

		return nil, fmt.Errorf("could not store check-in into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store check-in into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// CheckInByID fetches a check-in by ID. Returns nil when not found.
func (p *PgSQL) CheckInByID(ctx context.Context, id domain.CheckInID) (*domain.CheckIn, error) {
	var row PgCheckIn
	found, err := p.Builder.From(checkInsTable).
		Select(checkInColumns...).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch check-in by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// CheckInByUserOnDate returns the user's check-in inside [dayStart, dayEnd),
// or nil when there is none.
func (p *PgSQL) CheckInByUserOnDate(ctx context.Context,
	userID domain.UserID,
	dayStart, dayEnd time.Time) (*domain.CheckIn, error) {
	var row PgCheckIn
	found, err := p.Builder.From(checkInsTable).
		Select(checkInColumns...).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("created_at").Gte(dayStart),
			goqu.I("created_at").Lt(dayEnd),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch check-in by user on date: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// CheckInsByUser returns a page of the user's check-ins in creation order.
func (p *PgSQL) CheckInsByUser(ctx context.Context, userID domain.UserID, page uint) ([]domain.CheckIn, error) {
	if page == 0 {
		page = 1
	}

	var rows []PgCheckIn
	if err := p.Builder.From(checkInsTable).
		Select(checkInColumns...).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("seq").Asc()).
		Limit(storage.GymsPageSize).
		Offset((page - 1) * storage.GymsPageSize).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch check-ins by user from pg: %w", err)
	}

	return pgCheckInsToDomain(rows), nil
}

// CountCheckInsByUser returns the total number of check-ins for the user.
func (p *PgSQL) CountCheckInsByUser(ctx context.Context, userID domain.UserID) (int64, error) {
	count, err := p.Builder.From(checkInsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count check-ins by user in pg: %w", err)
	}

	return count, nil
}

// SetCheckInValidated marks a check-in as validated at the given instant and
// returns the updated row, or nil when the check-in does not exist.
func (p *PgSQL) SetCheckInValidated(ctx context.Context,
	id domain.CheckInID,
	at time.Time) (*domain.CheckIn, error) {
	var row PgCheckIn
	found, err := p.Builder.Update(checkInsTable).
		Set(goqu.Record{"validated_at": at}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgCheckIn{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not validate check-in in pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}
