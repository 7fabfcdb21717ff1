package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"gympass/pkg/crypto"
	"gympass/pkg/domain"
	"gympass/pkg/serrors"
	"gympass/pkg/storage"
)

// users is the concrete implementation of the Users interface. It coordinates
// password hashing with the persistence layer.
type users struct {
	// storage is the persistence layer used to store and look up accounts.
	storage storage.Storage
}

// Register creates a new account with a hashed password. The email must be
// unique; registering an already taken email returns a conflict error. The
// plain-text password is never persisted.
func (u users) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}
	if len(password) < 6 {
		return nil, serrors.With(serrors.ErrBadRequest, "password must be at least 6 characters")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := u.storage.StoreUser(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email already taken")
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the email and password pair and returns the matching
// user. An unknown email and a wrong password produce the same error so that
// callers cannot probe which accounts exist.
func (u users) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrInvalidCredentials, "invalid credentials")
	}

	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidCredentials, err, "invalid credentials")
	}

	return user, nil
}

// Profile fetches a single user by ID. It returns a not-found error when no
// matching user exists.
func (u users) Profile(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := u.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// New creates a new Users instance backed by the provided storage.
func New(storage storage.Storage) Users {
	return &users{
		storage: storage,
	}
}
