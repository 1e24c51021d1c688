package usecase

import (
	"context"

	"upfreelance/internal/domain/profile"
)

// ProfileUsecase fronts the four user-owned profile collections. It is a
// thin pass-through: structural validation happens at the boundary and the
// ownership invariants live in storage.
type ProfileUsecase interface {
	AddExperience(ctx context.Context, userID int, in profile.ExperienceInsert) (profile.Experience, error)
	ListExperiences(ctx context.Context, userID int) ([]profile.Experience, error)
	UpdateExperience(ctx context.Context, userID, id int, p profile.ExperiencePatch) (profile.Experience, error)
	RemoveExperience(ctx context.Context, userID, id int) error

	AddEducation(ctx context.Context, userID int, in profile.EducationInsert) (profile.Education, error)
	ListEducation(ctx context.Context, userID int) ([]profile.Education, error)
	UpdateEducation(ctx context.Context, userID, id int, p profile.EducationPatch) (profile.Education, error)
	RemoveEducation(ctx context.Context, userID, id int) error

	AddPortfolioItem(ctx context.Context, userID int, in profile.PortfolioItemInsert) (profile.PortfolioItem, error)
	ListPortfolio(ctx context.Context, userID int) ([]profile.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, userID, id int, p profile.PortfolioItemPatch) (profile.PortfolioItem, error)
	RemovePortfolioItem(ctx context.Context, userID, id int) error

	AddService(ctx context.Context, userID int, in profile.ServiceInsert) (profile.Service, error)
	ListServices(ctx context.Context, userID int) ([]profile.Service, error)
	UpdateService(ctx context.Context, userID, id int, p profile.ServicePatch) (profile.Service, error)
	RemoveService(ctx context.Context, userID, id int) error
}

type Profile struct {
	repo profile.Repository
}

func NewProfileUsecase(repo profile.Repository) *Profile {
	return &Profile{repo: repo}
}

func (u *Profile) AddExperience(ctx context.Context, userID int, in profile.ExperienceInsert) (profile.Experience, error) {
	return u.repo.CreateExperience(ctx, userID, in)
}

func (u *Profile) ListExperiences(ctx context.Context, userID int) ([]profile.Experience, error) {
	return u.repo.ListUserExperiences(ctx, userID)
}

func (u *Profile) UpdateExperience(ctx context.Context, userID, id int, p profile.ExperiencePatch) (profile.Experience, error) {
	if err := u.checkExperienceOwner(ctx, userID, id); err != nil {
		return profile.Experience{}, err
	}
	return u.repo.UpdateExperience(ctx, id, p)
}

func (u *Profile) RemoveExperience(ctx context.Context, userID, id int) error {
	if err := u.checkExperienceOwner(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.DeleteExperience(ctx, id)
}

func (u *Profile) AddEducation(ctx context.Context, userID int, in profile.EducationInsert) (profile.Education, error) {
	return u.repo.CreateEducation(ctx, userID, in)
}

func (u *Profile) ListEducation(ctx context.Context, userID int) ([]profile.Education, error) {
	return u.repo.ListUserEducation(ctx, userID)
}

func (u *Profile) UpdateEducation(ctx context.Context, userID, id int, p profile.EducationPatch) (profile.Education, error) {
	if err := u.checkEducationOwner(ctx, userID, id); err != nil {
		return profile.Education{}, err
	}
	return u.repo.UpdateEducation(ctx, id, p)
}

func (u *Profile) RemoveEducation(ctx context.Context, userID, id int) error {
	if err := u.checkEducationOwner(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.DeleteEducation(ctx, id)
}

func (u *Profile) AddPortfolioItem(ctx context.Context, userID int, in profile.PortfolioItemInsert) (profile.PortfolioItem, error) {
	return u.repo.CreatePortfolioItem(ctx, userID, in)
}

func (u *Profile) ListPortfolio(ctx context.Context, userID int) ([]profile.PortfolioItem, error) {
	return u.repo.ListUserPortfolio(ctx, userID)
}

func (u *Profile) UpdatePortfolioItem(ctx context.Context, userID, id int, p profile.PortfolioItemPatch) (profile.PortfolioItem, error) {
	if err := u.checkPortfolioOwner(ctx, userID, id); err != nil {
		return profile.PortfolioItem{}, err
	}
	return u.repo.UpdatePortfolioItem(ctx, id, p)
}

func (u *Profile) RemovePortfolioItem(ctx context.Context, userID, id int) error {
	if err := u.checkPortfolioOwner(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.DeletePortfolioItem(ctx, id)
}

func (u *Profile) AddService(ctx context.Context, userID int, in profile.ServiceInsert) (profile.Service, error) {
	return u.repo.CreateService(ctx, userID, in)
}

func (u *Profile) ListServices(ctx context.Context, userID int) ([]profile.Service, error) {
	return u.repo.ListUserServices(ctx, userID)
}

func (u *Profile) UpdateService(ctx context.Context, userID, id int, p profile.ServicePatch) (profile.Service, error) {
	if err := u.checkServiceOwner(ctx, userID, id); err != nil {
		return profile.Service{}, err
	}
	return u.repo.UpdateService(ctx, id, p)
}

func (u *Profile) RemoveService(ctx context.Context, userID, id int) error {
	if err := u.checkServiceOwner(ctx, userID, id); err != nil {
		return err
	}
	return u.repo.DeleteService(ctx, id)
}

func (u *Profile) checkExperienceOwner(ctx context.Context, userID, id int) error {
	items, err := u.repo.ListUserExperiences(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == id {
			return nil
		}
	}
	return profile.ErrNotFound
}

func (u *Profile) checkEducationOwner(ctx context.Context, userID, id int) error {
	items, err := u.repo.ListUserEducation(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == id {
			return nil
		}
	}
	return profile.ErrNotFound
}

func (u *Profile) checkPortfolioOwner(ctx context.Context, userID, id int) error {
	items, err := u.repo.ListUserPortfolio(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == id {
			return nil
		}
	}
	return profile.ErrNotFound
}

func (u *Profile) checkServiceOwner(ctx context.Context, userID, id int) error {
	items, err := u.repo.ListUserServices(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == id {
			return nil
		}
	}
	return profile.ErrNotFound
}
