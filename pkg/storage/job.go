package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; args
// carries the job payload and opts customizes insertion behavior (queue name,
// schedule time, priority). Enqueueing inside a WithTx callback participates
// in the surrounding transaction when the backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result
	// reports whether a job was actually inserted (false when skipped as a
	// duplicate by uniqueness options).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
