package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gympass/internal/checkins"
	"gympass/internal/worker"
	"gympass/pkg/domain"
	"gympass/pkg/logger"
	mockstorage "gympass/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func watchJob(id domain.CheckInID) *river.Job[checkins.WatchJobArgs] {
	return &river.Job[checkins.WatchJobArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   checkins.WatchJobArgs{CheckInID: id},
	}
}

func TestCheckInWatchWorker_UnvalidatedCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewCheckInWatchWorker(st)

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(&domain.CheckIn{
		ID:        id,
		CreatedAt: time.Now().Add(-time.Hour),
	}, nil)

	if err := w.Work(context.Background(), watchJob(id)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckInWatchWorker_ValidatedCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewCheckInWatchWorker(st)

	id := domain.CheckInID(uuid.New())
	created := time.Now().Add(-time.Hour)
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(&domain.CheckIn{
		ID:          id,
		CreatedAt:   created,
		ValidatedAt: created.Add(5 * time.Minute),
	}, nil)

	if err := w.Work(context.Background(), watchJob(id)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckInWatchWorker_MissingCheckInCancelsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewCheckInWatchWorker(st)

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(nil, nil)

	if err := w.Work(context.Background(), watchJob(id)); err == nil {
		t.Fatalf("expected cancel error")
	}
}

func TestCheckInWatchWorker_StorageErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewCheckInWatchWorker(st)

	id := domain.CheckInID(uuid.New())
	st.EXPECT().CheckInByID(gomock.Any(), id).Return(nil, errors.New("boom"))

	if err := w.Work(context.Background(), watchJob(id)); err == nil {
		t.Fatalf("expected error for retry")
	}
}
