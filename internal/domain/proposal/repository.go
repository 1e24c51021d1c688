package proposal

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("proposal not found")

type Repository interface {
	// CreateProposal verifies the referenced user and job exist
	// (user.ErrNotFound / job.ErrNotFound) and defaults GeneratedDate to the
	// creation instant.
	CreateProposal(ctx context.Context, in Insert) (Proposal, error)
	// ListUserProposals orders by generated date, most recent first.
	ListUserProposals(ctx context.Context, userID int) ([]Proposal, error)
	DeleteProposal(ctx context.Context, id int) error
}
