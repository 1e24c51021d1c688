package memory

import (
	"context"
	"sort"

	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/proposal"
	"upfreelance/internal/domain/user"
)

func (s *Store) CreateProposal(_ context.Context, in proposal.Insert) (proposal.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[in.UserID]; !ok {
		return proposal.Proposal{}, user.ErrNotFound
	}
	if _, ok := s.jobs[in.JobID]; !ok {
		return proposal.Proposal{}, job.ErrNotFound
	}

	p := proposal.Proposal{
		ID:            s.nextProposalID,
		UserID:        in.UserID,
		JobID:         in.JobID,
		Content:       in.Content,
		GeneratedDate: s.now(),
	}
	s.nextProposalID++
	s.proposals[p.ID] = p
	return p, nil
}

func (s *Store) ListUserProposals(_ context.Context, userID int) ([]proposal.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]proposal.Proposal, 0)
	for _, p := range s.proposals {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedDate.After(out[j].GeneratedDate)
	})
	return out, nil
}

func (s *Store) DeleteProposal(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.proposals, id)
	return nil
}
