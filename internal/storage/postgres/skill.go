package postgres

import (
	"context"
	"errors"

	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateSkill(ctx context.Context, name string) (skill.Skill, error) {
	var sk skill.Skill
	err := s.db.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&sk.ID, &sk.Name)
	if err != nil {
		return skill.Skill{}, translateConstraint(err)
	}
	return sk, nil
}

func (s *Store) ListSkills(ctx context.Context, page, limit int) ([]skill.Skill, int, error) {
	out := make([]skill.Skill, 0, limit)
	if page < 1 || limit < 1 {
		total, err := s.countSkills(ctx)
		return out, total, err
	}

	total, err := s.countSkills(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name FROM skills ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, (page-1)*limit,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var sk skill.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, 0, err
		}
		out = append(out, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *Store) countSkills(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM skills`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) DeleteSkill(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}

func (s *Store) AddUserSkill(ctx context.Context, userID, skillID int) error {
	// Referenced rows are checked up front so a missing user and a missing
	// skill stay distinguishable regardless of FK check ordering.
	found, err := exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID)
	if err != nil {
		return err
	}
	if !found {
		return user.ErrNotFound
	}
	found, err = exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM skills WHERE id = $1)`, skillID)
	if err != nil {
		return err
	}
	if !found {
		return skill.ErrNotFound
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO user_skills (user_id, skill_id) VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT user_skills_pair_key DO NOTHING`,
		userID, skillID,
	)
	return translateConstraint(err)
}

func (s *Store) RemoveUserSkill(ctx context.Context, userID, skillID int) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
		userID, skillID,
	)
	return err
}

func (s *Store) ListUserSkills(ctx context.Context, userID int) ([]skill.Skill, error) {
	rows, err := s.db.Query(ctx, `
		SELECT s.id, s.name
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY us.id ASC`,
		userID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []skill.Skill{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var sk skill.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
