package gyms_test

import (
	"context"
	"errors"
	"testing"

	"gympass/internal/gyms"
	"gympass/pkg/domain"
	"gympass/pkg/serrors"
	mockstorage "gympass/pkg/storage/mock"

	"go.uber.org/mock/gomock"
)

func newTestGyms(t *testing.T) (*mockstorage.MockStorage, gyms.Gyms) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, gyms.New(st)
}

func TestGyms_Create(t *testing.T) {
	st, g := newTestGyms(t)

	in := domain.Gym{Title: "JavaScript Gym", Latitude: -27.2092052, Longitude: -49.6401091}
	st.EXPECT().StoreGym(gomock.Any(), in).DoAndReturn(
		func(_ context.Context, gym domain.Gym) (*domain.Gym, error) {
			return &gym, nil
		},
	)

	gym, err := g.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gym.Title != "JavaScript Gym" {
		t.Fatalf("unexpected title: %q", gym.Title)
	}
}

func TestGyms_Create_Validation(t *testing.T) {
	_, g := newTestGyms(t)
	ctx := context.Background()

	cases := []domain.Gym{
		{Title: ""},
		{Title: "Gym", Latitude: 91},
		{Title: "Gym", Latitude: -91},
		{Title: "Gym", Longitude: 181},
		{Title: "Gym", Longitude: -181},
	}
	for _, gym := range cases {
		if _, err := g.Create(ctx, gym); !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", gym, err)
		}
	}
}

func TestGyms_Search(t *testing.T) {
	st, g := newTestGyms(t)

	st.EXPECT().SearchGyms(gomock.Any(), "JavaScript", uint(2)).
		Return([]domain.Gym{{Title: "JavaScript Gym"}}, nil)

	res, err := g.Search(context.Background(), "JavaScript", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Title != "JavaScript Gym" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGyms_Search_InvalidPage(t *testing.T) {
	_, g := newTestGyms(t)

	_, err := g.Search(context.Background(), "JavaScript", 0)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestGyms_Nearby(t *testing.T) {
	st, g := newTestGyms(t)

	st.EXPECT().NearbyGyms(gomock.Any(), -27.2092052, -49.6401091, gyms.NearbyRadiusKM).
		Return([]domain.Gym{{Title: "Near Gym"}}, nil)

	res, err := g.Nearby(context.Background(), -27.2092052, -49.6401091)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].Title != "Near Gym" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGyms_Nearby_InvalidCoordinate(t *testing.T) {
	_, g := newTestGyms(t)

	_, err := g.Nearby(context.Background(), 100, 0)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
