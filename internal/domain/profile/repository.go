package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile entry not found")

// Repository covers the four user-owned profile collections. Create methods
// verify the owner exists (user.ErrNotFound otherwise); deletes are
// idempotent.
type Repository interface {
	CreateExperience(ctx context.Context, userID int, in ExperienceInsert) (Experience, error)
	// ListUserExperiences orders by start date, most recent first.
	ListUserExperiences(ctx context.Context, userID int) ([]Experience, error)
	UpdateExperience(ctx context.Context, id int, p ExperiencePatch) (Experience, error)
	DeleteExperience(ctx context.Context, id int) error

	CreateEducation(ctx context.Context, userID int, in EducationInsert) (Education, error)
	// ListUserEducation orders by end year descending; a missing end year
	// sorts as far future.
	ListUserEducation(ctx context.Context, userID int) ([]Education, error)
	UpdateEducation(ctx context.Context, id int, p EducationPatch) (Education, error)
	DeleteEducation(ctx context.Context, id int) error

	CreatePortfolioItem(ctx context.Context, userID int, in PortfolioItemInsert) (PortfolioItem, error)
	ListUserPortfolio(ctx context.Context, userID int) ([]PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, id int, p PortfolioItemPatch) (PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id int) error

	CreateService(ctx context.Context, userID int, in ServiceInsert) (Service, error)
	ListUserServices(ctx context.Context, userID int) ([]Service, error)
	UpdateService(ctx context.Context, id int, p ServicePatch) (Service, error)
	DeleteService(ctx context.Context, id int) error
}
