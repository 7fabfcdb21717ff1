package users_test

import (
	"context"
	"errors"
	"testing"

	"gympass/internal/users"
	"gympass/pkg/crypto"
	"gympass/pkg/domain"
	"gympass/pkg/serrors"
	"gympass/pkg/storage"
	mockstorage "gympass/pkg/storage/mock"

	"go.uber.org/mock/gomock"
)

func newTestUsers(t *testing.T) (*mockstorage.MockStorage, users.Users) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, users.New(st)
}

func TestUsers_Register_HashesPassword(t *testing.T) {
	st, u := newTestUsers(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user domain.User) (*domain.User, error) {
			if user.PasswordHash == "secret123" {
				t.Fatalf("plain-text password was stored")
			}
			if err := crypto.ComparePassword(user.PasswordHash, "secret123"); err != nil {
				t.Fatalf("stored hash does not match password: %v", err)
			}

			return &user, nil
		},
	)

	user, err := u.Register(context.Background(), "John Doe", "john@example.com", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "john@example.com" {
		t.Fatalf("unexpected email: %q", user.Email)
	}
}

func TestUsers_Register_DuplicateEmail(t *testing.T) {
	st, u := newTestUsers(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateEmail)

	_, err := u.Register(context.Background(), "John Doe", "john@example.com", "secret123")
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUsers_Register_Validation(t *testing.T) {
	_, u := newTestUsers(t)

	if _, err := u.Register(context.Background(), "", "john@example.com", "secret123"); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for empty name, got %v", err)
	}
	if _, err := u.Register(context.Background(), "John", "not-an-email", "secret123"); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for bad email, got %v", err)
	}
	if _, err := u.Register(context.Background(), "John", "john@example.com", "123"); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for short password, got %v", err)
	}
}

func TestUsers_Authenticate(t *testing.T) {
	st, u := newTestUsers(t)

	hash, err := crypto.HashPassword("secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := domain.User{Email: "john@example.com", PasswordHash: hash}

	// success
	st.EXPECT().UserByEmail(gomock.Any(), "john@example.com").Return(&stored, nil)
	user, err := u.Authenticate(context.Background(), "john@example.com", "secret123")
	if err != nil || user == nil {
		t.Fatalf("unexpected: user=%+v err=%v", user, err)
	}

	// wrong password
	st.EXPECT().UserByEmail(gomock.Any(), "john@example.com").Return(&stored, nil)
	_, err = u.Authenticate(context.Background(), "john@example.com", "wrong")
	if !errors.Is(err, serrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// unknown email gets the same error as a wrong password
	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
	_, err = u.Authenticate(context.Background(), "ghost@example.com", "secret123")
	if !errors.Is(err, serrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUsers_Profile(t *testing.T) {
	st, u := newTestUsers(t)
	id := domain.UserID{}

	// found
	st.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{Name: "John"}, nil)
	user, err := u.Profile(context.Background(), id)
	if err != nil || user == nil || user.Name != "John" {
		t.Fatalf("unexpected: user=%+v err=%v", user, err)
	}

	// not found
	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)
	_, err = u.Profile(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, errors.New("boom"))
	if _, err := u.Profile(context.Background(), id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
