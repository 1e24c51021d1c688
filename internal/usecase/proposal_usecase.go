package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"upfreelance/internal/domain/proposal"
	"upfreelance/internal/domain/user"
	"upfreelance/internal/infrastructure/assist"
)

type GenerateInput struct {
	JobTitle         string
	JobDescription   string
	UserID           int
	IncludePortfolio bool
}

type ProposalUsecase interface {
	CreateProposal(ctx context.Context, in proposal.Insert) (proposal.Proposal, error)
	ListUserProposals(ctx context.Context, userID int) ([]proposal.Proposal, error)
	DeleteProposal(ctx context.Context, id int) error
	GenerateProposal(ctx context.Context, in GenerateInput) (string, error)
}

type Proposal struct {
	repo   proposal.Repository
	users  user.Repository
	assist assist.Client
}

func NewProposalUsecase(repo proposal.Repository, users user.Repository, assistClient assist.Client) *Proposal {
	return &Proposal{repo: repo, users: users, assist: assistClient}
}

func (u *Proposal) CreateProposal(ctx context.Context, in proposal.Insert) (proposal.Proposal, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return proposal.Proposal{}, ErrInvalidInput
	}
	return u.repo.CreateProposal(ctx, in)
}

func (u *Proposal) ListUserProposals(ctx context.Context, userID int) ([]proposal.Proposal, error) {
	return u.repo.ListUserProposals(ctx, userID)
}

func (u *Proposal) DeleteProposal(ctx context.Context, id int) error {
	return u.repo.DeleteProposal(ctx, id)
}

// GenerateProposal prefers the external sidecar when one is configured and
// falls back to the built-in template when it is absent or errors out.
func (u *Proposal) GenerateProposal(ctx context.Context, in GenerateInput) (string, error) {
	in.JobDescription = strings.TrimSpace(in.JobDescription)
	if in.JobDescription == "" {
		return "", ErrInvalidInput
	}

	if u.assist != nil {
		text, err := u.assist.GenerateProposal(ctx, assist.GenerateRequest{
			JobTitle:         in.JobTitle,
			JobDescription:   in.JobDescription,
			IncludePortfolio: in.IncludePortfolio,
		})
		if err == nil {
			return text, nil
		}
	}

	return u.templateProposal(ctx, in), nil
}

func (u *Proposal) templateProposal(ctx context.Context, in GenerateInput) string {
	signature := "Your Freelancer"
	if in.UserID > 0 {
		if usr, err := u.users.GetUser(ctx, in.UserID); err == nil {
			name := strings.TrimSpace(usr.FirstName + " " + usr.LastName)
			if name != "" {
				signature = name
			}
		} else if !errors.Is(err, user.ErrNotFound) {
			// Storage failure; keep the generic signature.
			signature = "Your Freelancer"
		}
	}

	heading := in.JobDescription
	if r := []rune(heading); len(r) > 20 {
		heading = string(r[:20])
	}

	focus := "web development"
	if strings.Contains(in.JobDescription, "React") {
		focus = "React development"
	}

	return strings.TrimSpace(fmt.Sprintf(`
Dear Hiring Manager,

I am excited to apply for the %s... position. With my experience in web development and focus on creating clean, efficient code and intuitive user experiences, I believe I would be a great fit for this role.

My key skills include:
- React.js and modern JavaScript frameworks
- Responsive design implementation
- RESTful API integration
- Clean, maintainable code practices

I have successfully completed similar projects, delivering high-quality solutions on time and within budget. I am particularly interested in this project because it aligns with my expertise in %s.

I am available to start immediately and can dedicate 30+ hours per week to your project. I look forward to discussing how I can contribute to your team's success.

Best regards,
%s
`, heading, focus, signature))
}
