package usecase

import (
	"context"
	"strings"
	"time"

	"upfreelance/internal/domain/job"
	"upfreelance/internal/infrastructure/cache"
)

const (
	jobsListCacheKey = "jobs:list"
	jobsListCacheTTL = 5 * time.Minute
)

type JobUsecase interface {
	CreateJob(ctx context.Context, in job.Insert) (job.Job, error)
	GetJob(ctx context.Context, id int) (job.Job, error)
	ListJobs(ctx context.Context) ([]job.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

type Job struct {
	repo  job.Repository
	cache *cache.Redis
}

func NewJobUsecase(repo job.Repository, c *cache.Redis) *Job {
	return &Job{repo: repo, cache: c}
}

func (u *Job) CreateJob(ctx context.Context, in job.Insert) (job.Job, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" || in.Description == "" {
		return job.Job{}, ErrInvalidInput
	}

	created, err := u.repo.CreateJob(ctx, in)
	if err != nil {
		return job.Job{}, err
	}
	_ = u.cache.Delete(ctx, jobsListCacheKey)
	return created, nil
}

func (u *Job) GetJob(ctx context.Context, id int) (job.Job, error) {
	return u.repo.GetJob(ctx, id)
}

// ListJobs reads through the cache. A cache miss or a cache error falls back
// to storage; the cache write is best effort.
func (u *Job) ListJobs(ctx context.Context) ([]job.Job, error) {
	var cached []job.Job
	if hit, err := u.cache.GetJSON(ctx, jobsListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	jobs, err := u.repo.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	_ = u.cache.SetJSON(ctx, jobsListCacheKey, jobs, jobsListCacheTTL)
	return jobs, nil
}

func (u *Job) DeleteJob(ctx context.Context, id int) error {
	if err := u.repo.DeleteJob(ctx, id); err != nil {
		return err
	}
	_ = u.cache.Delete(ctx, jobsListCacheKey)
	return nil
}
