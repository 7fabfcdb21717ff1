package worker

import (
	"context"
	"fmt"

	"gympass/internal/checkins"
	"gympass/pkg/logger"
	"gympass/pkg/metrics"
	"gympass/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CheckInWatchWorker is a River worker that runs once the validation window
// of a check-in has closed. Check-ins that were never validated by staff are
// reported through the logs and the expired-unvalidated counter; the
// check-in itself is left untouched.
type CheckInWatchWorker struct {
	river.WorkerDefaults[checkins.WatchJobArgs]

	// storage is used to load the check-in under inspection.
	storage storage.Storage
}

// NewCheckInWatchWorker constructs a CheckInWatchWorker backed by the
// provided storage.
func NewCheckInWatchWorker(st storage.Storage) *CheckInWatchWorker {
	return &CheckInWatchWorker{storage: st}
}

// Work inspects a single check-in after its validation window has elapsed.
// A missing check-in cancels the job; transient storage errors are returned
// so River retries.
func (c *CheckInWatchWorker) Work(ctx context.Context, job *river.Job[checkins.WatchJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("checkInID", uuid.UUID(job.Args.CheckInID).String()))

	checkIn, err := c.storage.CheckInByID(ctx, job.Args.CheckInID)
	if err != nil {
		logger.Error(ctx, "error loading check-in", zap.Error(err))

		return fmt.Errorf("could not get check-in: %w", err)
	}
	if checkIn == nil {
		return river.JobCancel(fmt.Errorf("check-in no longer exists")) //nolint: wrapcheck
	}

	if checkIn.Validated() {
		logger.Debug(ctx, "check-in was validated in time",
			zap.Time("validatedAt", checkIn.ValidatedAt))

		return nil
	}

	logger.Info(ctx, "check-in expired without validation",
		zap.Time("createdAt", checkIn.CreatedAt))
	metrics.RecordCheckInExpiredUnvalidated()

	return nil
}
