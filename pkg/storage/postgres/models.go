package postgres

import (
	"database/sql"
	"time"

	"gympass/pkg/domain"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

type PgGym struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`
	// Seq is the insertion-order tiebreaker; created_at is not monotonic.
	Seq int64 `db:"seq" goqu:"skipinsert"`

	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Phone       sql.NullString `db:"phone"`

	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgGym) ToDomain() *domain.Gym {
	return &domain.Gym{
		ID:          domain.GymID(p.ID),
		Title:       p.Title,
		Description: p.Description.String,
		Phone:       p.Phone.String,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgGym) FromDomain(gym domain.Gym) {
	*p = PgGym{
		ID:    uuid.UUID(gym.ID),
		Title: gym.Title,
		Description: sql.NullString{
			String: gym.Description,
			Valid:  gym.Description != "",
		},
		Phone: sql.NullString{
			String: gym.Phone,
			Valid:  gym.Phone != "",
		},
		Latitude:  gym.Latitude,
		Longitude: gym.Longitude,
		CreatedAt: gym.CreatedAt,
	}
}

func pgGymsToDomain(gyms []PgGym) []domain.Gym {
	out := make([]domain.Gym, 0, len(gyms))
	for i := range gyms {
		out = append(out, *gyms[i].ToDomain())
	}

	return out
}

// PgCheckIn persists check-ins. CreatedAt is provided by the service layer
// (it comes from the injected clock) rather than the database; created_day is
// a generated column and is never written by the application.
type PgCheckIn struct {
	ID  uuid.UUID `db:"id" goqu:"skipinsert"`
	Seq int64     `db:"seq" goqu:"skipinsert"`

	UserID uuid.UUID `db:"user_id"`
	GymID  uuid.UUID `db:"gym_id"`

	CreatedAt   time.Time    `db:"created_at"`
	ValidatedAt sql.NullTime `db:"validated_at" goqu:"skipinsert"`
}

func (p *PgCheckIn) ToDomain() *domain.CheckIn {
	return &domain.CheckIn{
		ID:          domain.CheckInID(p.ID),
		UserID:      domain.UserID(p.UserID),
		GymID:       domain.GymID(p.GymID),
		CreatedAt:   p.CreatedAt,
		ValidatedAt: p.ValidatedAt.Time,
	}
}

func (p *PgCheckIn) FromDomain(checkIn domain.CheckIn) {
	*p = PgCheckIn{
		ID:        uuid.UUID(checkIn.ID),
		UserID:    uuid.UUID(checkIn.UserID),
		GymID:     uuid.UUID(checkIn.GymID),
		CreatedAt: checkIn.CreatedAt,
		ValidatedAt: sql.NullTime{
			Time:  checkIn.ValidatedAt,
			Valid: !checkIn.ValidatedAt.IsZero(),
		},
	}
}

func pgCheckInsToDomain(checkIns []PgCheckIn) []domain.CheckIn {
	out := make([]domain.CheckIn, 0, len(checkIns))
	for i := range checkIns {
		out = append(out, *checkIns[i].ToDomain())
	}

	return out
}
