package postgres

import (
	"context"
	"errors"

	"upfreelance/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

func notFoundAs(err error, sentinel error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sentinel
	}
	return err
}

func (s *Store) CreateExperience(ctx context.Context, userID int, in profile.ExperienceInsert) (profile.Experience, error) {
	currently := in.CurrentlyWorking
	if currently == nil {
		f := false
		currently = &f
	}

	var e profile.Experience
	err := s.db.QueryRow(ctx, `
		INSERT INTO experiences (user_id, title, company, start_date, end_date, currently_working, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, company, start_date, end_date, currently_working, description`,
		userID, in.Title, in.Company, in.StartDate, in.EndDate, currently, in.Description,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.CurrentlyWorking, &e.Description)
	if err != nil {
		return profile.Experience{}, translateConstraint(err)
	}
	return e, nil
}

func (s *Store) ListUserExperiences(ctx context.Context, userID int) ([]profile.Experience, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, company, start_date, end_date, currently_working, description
		FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Experience, 0)
	for rows.Next() {
		var e profile.Experience
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.CurrentlyWorking, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) UpdateExperience(ctx context.Context, id int, p profile.ExperiencePatch) (profile.Experience, error) {
	var e profile.Experience
	err := s.db.QueryRow(ctx, `
		UPDATE experiences SET
			title = COALESCE($2, title),
			company = COALESCE($3, company),
			start_date = COALESCE($4, start_date),
			end_date = COALESCE($5, end_date),
			currently_working = COALESCE($6, currently_working),
			description = COALESCE($7, description)
		WHERE id = $1
		RETURNING id, user_id, title, company, start_date, end_date, currently_working, description`,
		id, p.Title, p.Company, p.StartDate, p.EndDate, p.CurrentlyWorking, p.Description,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.CurrentlyWorking, &e.Description)
	if err != nil {
		return profile.Experience{}, notFoundAs(err, profile.ErrNotFound)
	}
	return e, nil
}

func (s *Store) DeleteExperience(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	return err
}

func (s *Store) CreateEducation(ctx context.Context, userID int, in profile.EducationInsert) (profile.Education, error) {
	currently := in.CurrentlyStudying
	if currently == nil {
		f := false
		currently = &f
	}

	var e profile.Education
	err := s.db.QueryRow(ctx, `
		INSERT INTO education (user_id, degree, institution, start_year, end_year, currently_studying)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, degree, institution, start_year, end_year, currently_studying`,
		userID, in.Degree, in.Institution, in.StartYear, in.EndYear, currently,
	).Scan(&e.ID, &e.UserID, &e.Degree, &e.Institution, &e.StartYear, &e.EndYear, &e.CurrentlyStudying)
	if err != nil {
		return profile.Education{}, translateConstraint(err)
	}
	return e, nil
}

func (s *Store) ListUserEducation(ctx context.Context, userID int) ([]profile.Education, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, degree, institution, start_year, end_year, currently_studying
		FROM education WHERE user_id = $1 ORDER BY end_year DESC NULLS FIRST`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Education, 0)
	for rows.Next() {
		var e profile.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.Degree, &e.Institution, &e.StartYear, &e.EndYear, &e.CurrentlyStudying); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) UpdateEducation(ctx context.Context, id int, p profile.EducationPatch) (profile.Education, error) {
	var e profile.Education
	err := s.db.QueryRow(ctx, `
		UPDATE education SET
			degree = COALESCE($2, degree),
			institution = COALESCE($3, institution),
			start_year = COALESCE($4, start_year),
			end_year = COALESCE($5, end_year),
			currently_studying = COALESCE($6, currently_studying)
		WHERE id = $1
		RETURNING id, user_id, degree, institution, start_year, end_year, currently_studying`,
		id, p.Degree, p.Institution, p.StartYear, p.EndYear, p.CurrentlyStudying,
	).Scan(&e.ID, &e.UserID, &e.Degree, &e.Institution, &e.StartYear, &e.EndYear, &e.CurrentlyStudying)
	if err != nil {
		return profile.Education{}, notFoundAs(err, profile.ErrNotFound)
	}
	return e, nil
}

func (s *Store) DeleteEducation(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	return err
}

func (s *Store) CreatePortfolioItem(ctx context.Context, userID int, in profile.PortfolioItemInsert) (profile.PortfolioItem, error) {
	var p profile.PortfolioItem
	err := s.db.QueryRow(ctx, `
		INSERT INTO portfolio_items (user_id, title, description, image_url, project_url, skills)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, description, image_url, project_url, skills`,
		userID, in.Title, in.Description, in.ImageURL, in.ProjectURL, in.Skills,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.Skills)
	if err != nil {
		return profile.PortfolioItem{}, translateConstraint(err)
	}
	return p, nil
}

func (s *Store) ListUserPortfolio(ctx context.Context, userID int) ([]profile.PortfolioItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, description, image_url, project_url, skills
		FROM portfolio_items WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.PortfolioItem, 0)
	for rows.Next() {
		var p profile.PortfolioItem
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.Skills); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) UpdatePortfolioItem(ctx context.Context, id int, patch profile.PortfolioItemPatch) (profile.PortfolioItem, error) {
	var p profile.PortfolioItem
	err := s.db.QueryRow(ctx, `
		UPDATE portfolio_items SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			project_url = COALESCE($5, project_url),
			skills = COALESCE($6, skills)
		WHERE id = $1
		RETURNING id, user_id, title, description, image_url, project_url, skills`,
		id, patch.Title, patch.Description, patch.ImageURL, patch.ProjectURL, patch.Skills,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL, &p.Skills)
	if err != nil {
		return profile.PortfolioItem{}, notFoundAs(err, profile.ErrNotFound)
	}
	return p, nil
}

func (s *Store) DeletePortfolioItem(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	return err
}

func (s *Store) CreateService(ctx context.Context, userID int, in profile.ServiceInsert) (profile.Service, error) {
	var sv profile.Service
	err := s.db.QueryRow(ctx, `
		INSERT INTO services (user_id, title, description, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, description, hourly_rate`,
		userID, in.Title, in.Description, in.HourlyRate,
	).Scan(&sv.ID, &sv.UserID, &sv.Title, &sv.Description, &sv.HourlyRate)
	if err != nil {
		return profile.Service{}, translateConstraint(err)
	}
	return sv, nil
}

func (s *Store) ListUserServices(ctx context.Context, userID int) ([]profile.Service, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, description, hourly_rate
		FROM services WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Service, 0)
	for rows.Next() {
		var sv profile.Service
		if err := rows.Scan(&sv.ID, &sv.UserID, &sv.Title, &sv.Description, &sv.HourlyRate); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *Store) UpdateService(ctx context.Context, id int, p profile.ServicePatch) (profile.Service, error) {
	var sv profile.Service
	err := s.db.QueryRow(ctx, `
		UPDATE services SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			hourly_rate = COALESCE($4, hourly_rate)
		WHERE id = $1
		RETURNING id, user_id, title, description, hourly_rate`,
		id, p.Title, p.Description, p.HourlyRate,
	).Scan(&sv.ID, &sv.UserID, &sv.Title, &sv.Description, &sv.HourlyRate)
	if err != nil {
		return profile.Service{}, notFoundAs(err, profile.ErrNotFound)
	}
	return sv, nil
}

func (s *Store) DeleteService(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}
