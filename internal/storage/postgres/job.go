package postgres

import (
	"context"

	"upfreelance/internal/domain/job"
)

const jobColumns = `id, title, description, pay_rate, duration, location, skills, posted_date, company_name`

func (s *Store) CreateJob(ctx context.Context, in job.Insert) (job.Job, error) {
	var j job.Job
	err := s.db.QueryRow(ctx, `
		INSERT INTO jobs (title, description, pay_rate, duration, location, skills, posted_date, company_name)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()), $8)
		RETURNING `+jobColumns,
		in.Title, in.Description, in.PayRate, in.Duration, in.Location,
		in.Skills, in.PostedDate, in.CompanyName,
	).Scan(&j.ID, &j.Title, &j.Description, &j.PayRate, &j.Duration, &j.Location, &j.Skills, &j.PostedDate, &j.CompanyName)
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (s *Store) GetJob(ctx context.Context, id int) (job.Job, error) {
	var j job.Job
	err := s.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.Title, &j.Description, &j.PayRate, &j.Duration, &j.Location, &j.Skills, &j.PostedDate, &j.CompanyName)
	if err != nil {
		return job.Job{}, notFoundAs(err, job.ErrNotFound)
	}
	return j, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY posted_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.PayRate, &j.Duration, &j.Location, &j.Skills, &j.PostedDate, &j.CompanyName); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *Store) DeleteJob(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}
