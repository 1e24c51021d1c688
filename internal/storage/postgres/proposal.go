package postgres

import (
	"context"

	"upfreelance/internal/domain/proposal"
)

func (s *Store) CreateProposal(ctx context.Context, in proposal.Insert) (proposal.Proposal, error) {
	var p proposal.Proposal
	err := s.db.QueryRow(ctx, `
		INSERT INTO proposals (user_id, job_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, job_id, content, generated_date`,
		in.UserID, in.JobID, in.Content,
	).Scan(&p.ID, &p.UserID, &p.JobID, &p.Content, &p.GeneratedDate)
	if err != nil {
		return proposal.Proposal{}, translateConstraint(err)
	}
	return p, nil
}

func (s *Store) ListUserProposals(ctx context.Context, userID int) ([]proposal.Proposal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, job_id, content, generated_date
		FROM proposals WHERE user_id = $1 ORDER BY generated_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]proposal.Proposal, 0)
	for rows.Next() {
		var p proposal.Proposal
		if err := rows.Scan(&p.ID, &p.UserID, &p.JobID, &p.Content, &p.GeneratedDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) DeleteProposal(ctx context.Context, id int) error {
	_, err := s.db.Exec(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	return err
}
