package users

import (
	"context"

	"gympass/pkg/domain"
)

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Users interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Profile(ctx context.Context, userID domain.UserID) (*domain.User, error)
}
