package checkins_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gympass/internal/checkins"
	"gympass/pkg/domain"
	"gympass/pkg/serrors"
	"gympass/pkg/storage"
	mockstorage "gympass/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	gymCoord  = domain.Gym{Latitude: -27.2092052, Longitude: -49.6401091}
	farCoord  = [2]float64{-27.0747279, -49.4889672}
	nearCoord = [2]float64{-27.2092052, -49.6401091}
)

func newTestCheckIns(t *testing.T, now time.Time) (*gomock.Controller, *mockstorage.MockStorage, checkins.CheckIns) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := checkins.New(st, checkins.Options{Now: func() time.Time { return now }})

	return ctrl, st, c
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func testGym() *domain.Gym {
	return &domain.Gym{
		ID:        domain.GymID(uuid.New()),
		Title:     "JavaScript Gym",
		Latitude:  gymCoord.Latitude,
		Longitude: gymCoord.Longitude,
	}
}

func TestCheckIns_CheckIn_Success(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	ctrl, st, c := newTestCheckIns(t, now)

	gym := testGym()
	userID := domain.UserID(uuid.New())

	st.EXPECT().GymByID(gomock.Any(), gym.ID).Return(gym, nil)
	st.EXPECT().CheckInByUserOnDate(gomock.Any(), userID,
		time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC)).Return(nil, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreCheckIn(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, checkIn domain.CheckIn) (*domain.CheckIn, error) {
				if !checkIn.CreatedAt.Equal(now) {
					t.Fatalf("expected creation at the injected clock, got %v", checkIn.CreatedAt)
				}
				checkIn.ID = domain.CheckInID(uuid.New())

				return &checkIn, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	checkIn, err := c.CheckIn(context.Background(), userID, gym.ID, nearCoord[0], nearCoord[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkIn.UserID != userID || checkIn.GymID != gym.ID {
		t.Fatalf("unexpected check-in: %+v", checkIn)
	}
}

func TestCheckIns_CheckIn_GymNotFound(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, now)

	gymID := domain.GymID(uuid.New())
	st.EXPECT().GymByID(gomock.Any(), gymID).Return(nil, nil)

	_, err := c.CheckIn(context.Background(), domain.UserID(uuid.New()), gymID, 0, 0)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckIns_CheckIn_TooFar(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, now)

	gym := testGym()
	// only the gym lookup runs: the distance rule is checked before the
	// daily limit, so no date query or insert should happen
	st.EXPECT().GymByID(gomock.Any(), gym.ID).Return(gym, nil)

	_, err := c.CheckIn(context.Background(), domain.UserID(uuid.New()), gym.ID, farCoord[0], farCoord[1])
	if !errors.Is(err, serrors.ErrMaxDistance) {
		t.Fatalf("expected ErrMaxDistance, got %v", err)
	}
}

func TestCheckIns_CheckIn_TwiceSameDay(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, now)

	gym := testGym()
	userID := domain.UserID(uuid.New())

	st.EXPECT().GymByID(gomock.Any(), gym.ID).Return(gym, nil)
	st.EXPECT().CheckInByUserOnDate(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(&domain.CheckIn{ID: domain.CheckInID(uuid.New())}, nil)

	_, err := c.CheckIn(context.Background(), userID, gym.ID, nearCoord[0], nearCoord[1])
	if !errors.Is(err, serrors.ErrMaxCheckIns) {
		t.Fatalf("expected ErrMaxCheckIns, got %v", err)
	}
}

func TestCheckIns_CheckIn_CrossMidnightUsesNextDay(t *testing.T) {
	// 23:30 on the 20th: the day window must cover only the 20th
	now := time.Date(2022, 1, 20, 23, 30, 0, 0, time.UTC)
	ctrl, st, c := newTestCheckIns(t, now)

	gym := testGym()
	userID := domain.UserID(uuid.New())

	st.EXPECT().GymByID(gomock.Any(), gym.ID).Return(gym, nil)
	st.EXPECT().CheckInByUserOnDate(gomock.Any(), userID,
		time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC)).Return(nil, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreCheckIn(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, checkIn domain.CheckIn) (*domain.CheckIn, error) {
				checkIn.ID = domain.CheckInID(uuid.New())

				return &checkIn, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	if _, err := c.CheckIn(context.Background(), userID, gym.ID, nearCoord[0], nearCoord[1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckIns_CheckIn_ConcurrentDuplicate(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	ctrl, st, c := newTestCheckIns(t, now)

	gym := testGym()
	userID := domain.UserID(uuid.New())

	st.EXPECT().GymByID(gomock.Any(), gym.ID).Return(gym, nil)
	st.EXPECT().CheckInByUserOnDate(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// another request won the race between the read and the insert
		tx.EXPECT().StoreCheckIn(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateDailyCheckIn)
	})

	_, err := c.CheckIn(context.Background(), userID, gym.ID, nearCoord[0], nearCoord[1])
	if !errors.Is(err, serrors.ErrMaxCheckIns) {
		t.Fatalf("expected ErrMaxCheckIns, got %v", err)
	}
}

func TestCheckIns_Validate_Success(t *testing.T) {
	created := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	now := created.Add(10 * time.Minute)
	_, st, c := newTestCheckIns(t, now)

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(&domain.CheckIn{ID: id, CreatedAt: created}, nil)
	st.EXPECT().SetCheckInValidated(gomock.Any(), id, now).
		Return(&domain.CheckIn{ID: id, CreatedAt: created, ValidatedAt: now}, nil)

	checkIn, err := c.Validate(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !checkIn.Validated() {
		t.Fatalf("expected validated check-in")
	}
}

func TestCheckIns_Validate_WindowClosed(t *testing.T) {
	created := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	now := created.Add(21 * time.Minute)
	_, st, c := newTestCheckIns(t, now)

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(&domain.CheckIn{ID: id, CreatedAt: created}, nil)

	_, err := c.Validate(context.Background(), id)
	if !errors.Is(err, serrors.ErrLateValidation) {
		t.Fatalf("expected ErrLateValidation, got %v", err)
	}
}

func TestCheckIns_Validate_NotFound(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, now)

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(nil, nil)

	_, err := c.Validate(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckIns_Validate_AlreadyValidated(t *testing.T) {
	created := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, created.Add(5*time.Minute))

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).
		Return(&domain.CheckIn{ID: id, CreatedAt: created, ValidatedAt: created.Add(time.Minute)}, nil)

	_, err := c.Validate(context.Background(), id)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCheckIns_History(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, now)

	userID := domain.UserID(uuid.New())
	st.EXPECT().CheckInsByUser(gomock.Any(), userID, uint(2)).
		Return([]domain.CheckIn{{ID: domain.CheckInID(uuid.New())}}, nil)

	res, err := c.History(context.Background(), userID, 2)
	if err != nil || len(res) != 1 {
		t.Fatalf("unexpected: res=%+v err=%v", res, err)
	}

	if _, err := c.History(context.Background(), userID, 0); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestCheckIns_UserMetrics(t *testing.T) {
	now := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	_, st, c := newTestCheckIns(t, now)

	userID := domain.UserID(uuid.New())

	st.EXPECT().CountCheckInsByUser(gomock.Any(), userID).Return(int64(0), nil)
	count, err := c.UserMetrics(context.Background(), userID)
	if err != nil || count != 0 {
		t.Fatalf("unexpected: count=%d err=%v", count, err)
	}

	st.EXPECT().CountCheckInsByUser(gomock.Any(), userID).Return(int64(23), nil)
	count, err = c.UserMetrics(context.Background(), userID)
	if err != nil || count != 23 {
		t.Fatalf("unexpected: count=%d err=%v", count, err)
	}
}
