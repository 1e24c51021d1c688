package memory

import (
	"context"
	"sort"

	"upfreelance/internal/domain/job"
)

func (s *Store) CreateJob(_ context.Context, in job.Insert) (job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posted := s.now()
	if in.PostedDate != nil {
		posted = *in.PostedDate
	}

	j := job.Job{
		ID:          s.nextJobID,
		Title:       in.Title,
		Description: in.Description,
		PayRate:     in.PayRate,
		Duration:    in.Duration,
		Location:    in.Location,
		Skills:      in.Skills,
		PostedDate:  posted,
		CompanyName: in.CompanyName,
	}
	s.nextJobID++
	s.jobs[j.ID] = j
	return j, nil
}

func (s *Store) GetJob(_ context.Context, id int) (job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (s *Store) ListJobs(_ context.Context) ([]job.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]job.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PostedDate.After(out[j].PostedDate)
	})
	return out, nil
}

func (s *Store) DeleteJob(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, id)
	return nil
}
