package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	// CreateJob defaults PostedDate to the creation instant when absent.
	CreateJob(ctx context.Context, in Insert) (Job, error)
	GetJob(ctx context.Context, id int) (Job, error)
	// ListJobs orders by posted date, most recent first.
	ListJobs(ctx context.Context) ([]Job, error)
	DeleteJob(ctx context.Context, id int) error
}
