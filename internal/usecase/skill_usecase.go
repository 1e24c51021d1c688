package usecase

import (
	"context"
	"strings"

	"upfreelance/internal/domain/skill"
)

const (
	defaultSkillPage  = 1
	defaultSkillLimit = 10
	maxSkillLimit     = 100
)

type SkillUsecase interface {
	CreateSkill(ctx context.Context, name string) (skill.Skill, error)
	ListSkills(ctx context.Context, page, limit int) ([]skill.Skill, int, error)
	DeleteSkill(ctx context.Context, id int) error
	AddUserSkill(ctx context.Context, userID, skillID int) error
	RemoveUserSkill(ctx context.Context, userID, skillID int) error
	ListUserSkills(ctx context.Context, userID int) ([]skill.Skill, error)
}

type Skill struct {
	repo skill.Repository
}

func NewSkillUsecase(repo skill.Repository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) CreateSkill(ctx context.Context, name string) (skill.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	return u.repo.CreateSkill(ctx, name)
}

func (u *Skill) ListSkills(ctx context.Context, page, limit int) ([]skill.Skill, int, error) {
	if page < 1 {
		page = defaultSkillPage
	}
	if limit < 1 {
		limit = defaultSkillLimit
	}
	if limit > maxSkillLimit {
		limit = maxSkillLimit
	}
	return u.repo.ListSkills(ctx, page, limit)
}

func (u *Skill) DeleteSkill(ctx context.Context, id int) error {
	return u.repo.DeleteSkill(ctx, id)
}

func (u *Skill) AddUserSkill(ctx context.Context, userID, skillID int) error {
	return u.repo.AddUserSkill(ctx, userID, skillID)
}

func (u *Skill) RemoveUserSkill(ctx context.Context, userID, skillID int) error {
	return u.repo.RemoveUserSkill(ctx, userID, skillID)
}

func (u *Skill) ListUserSkills(ctx context.Context, userID int) ([]skill.Skill, error) {
	return u.repo.ListUserSkills(ctx, userID)
}
