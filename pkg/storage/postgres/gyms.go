package postgres

import (
	"context"
	"fmt"

	"gympass/pkg/domain"
	"gympass/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const gymsTable = "gyms"

// StoreGym inserts a new gym and returns the stored row.
func (p *PgSQL) StoreGym(ctx context.Context, gym domain.Gym) (*domain.Gym, error) {
	var pgGym PgGym
	pgGym.FromDomain(gym)

	var row PgGym
	found, err := p.Builder.Insert(gymsTable).
		Rows(pgGym).
		Returning(&PgGym{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store gym into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store gym into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// GymByID fetches a gym by ID. Returns nil when not found.
func (p *PgSQL) GymByID(ctx context.Context, id domain.GymID) (*domain.Gym, error) {
	var row PgGym
	found, err := p.Builder.From(gymsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gym by id: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

// SearchGyms returns a page of gyms whose title contains the query,
// case-insensitively. Pages are 1-indexed, storage.GymsPageSize rows each,
// ordered by creation order so pagination is stable.
func (p *PgSQL) SearchGyms(ctx context.Context, query string, page uint) ([]domain.Gym, error) {
	if page == 0 {
		page = 1
	}

	var rows []PgGym
	if err := p.Builder.From(gymsTable).
		Where(goqu.I("title").ILike("%" + query + "%")).
		Order(goqu.I("seq").Asc()).
		Limit(storage.GymsPageSize).
		Offset((page - 1) * storage.GymsPageSize).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search gyms in pg: %w", err)
	}

	return pgGymsToDomain(rows), nil
}

// NearbyGyms returns all gyms within radiusKM kilometers of the coordinate.
// The distance is computed in SQL with the same Haversine formula the service
// layer uses for the check-in geofence.
func (p *PgSQL) NearbyGyms(ctx context.Context, latitude, longitude, radiusKM float64) ([]domain.Gym, error) {
	distance := goqu.L(
		"(6371 * acos(cos(radians(?)) * cos(radians(latitude::float8)) * "+
			"cos(radians(longitude::float8) - radians(?)) + "+
			"sin(radians(?)) * sin(radians(latitude::float8))))",
		latitude, longitude, latitude,
	)

	var rows []PgGym
	if err := p.Builder.From(gymsTable).
		Where(distance.Lte(radiusKM)).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch nearby gyms from pg: %w", err)
	}

	return pgGymsToDomain(rows), nil
}
