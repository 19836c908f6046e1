package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal surface for enqueueing background jobs. The
// scheduler uses it to hand per-website scan work to the queue backend
// without depending on a concrete driver. Insertion participates in any
// surrounding transaction when the backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean result
	// reports whether a job was actually inserted; false means an equivalent
	// job already existed under the uniqueness rules of args.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
