package checkins

import (
	"time"

	"gympass/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// WatchJobArgs contains the arguments for a check-in watch job submitted to
// River. The job fires once the validation window for the check-in has
// elapsed so that expired, never-validated check-ins can be reported.
type WatchJobArgs struct {
	// CheckInID identifies the check-in to inspect. It is marked as unique so
	// River enforces one watch job per check-in.
	CheckInID domain.CheckInID `json:"checkInId" river:"unique"`

	// scheduledAt defers the job until the validation window has closed.
	scheduledAt time.Time
}

// Kind returns the River job kind used to register and dispatch the watch worker.
func (args WatchJobArgs) Kind() string { return "CheckInWatchJob" }

// InsertOpts returns the River options that control how the job is enqueued:
// it runs no earlier than the end of the validation window and never twice
// for the same check-in.
func (args WatchJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		ScheduledAt: args.scheduledAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
