package skill

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("skill not found")
	ErrNameTaken = errors.New("skill already exists")
)

type Repository interface {
	CreateSkill(ctx context.Context, name string) (Skill, error)
	// ListSkills returns the requested 1-indexed page over insertion order
	// plus the total count. Out-of-range pages yield an empty slice.
	ListSkills(ctx context.Context, page, limit int) ([]Skill, int, error)
	DeleteSkill(ctx context.Context, id int) error

	// AddUserSkill is idempotent union: linking an already linked pair is a
	// no-op. Returns user.ErrNotFound or ErrNotFound when a side is absent.
	AddUserSkill(ctx context.Context, userID, skillID int) error
	RemoveUserSkill(ctx context.Context, userID, skillID int) error
	// ListUserSkills resolves each link to its Skill, skipping links whose
	// Skill has been deleted.
	ListUserSkills(ctx context.Context, userID int) ([]Skill, error)
}
