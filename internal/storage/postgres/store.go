// Package postgres implements the storage contract over a relational schema
// matching the memory store's semantics. Uniqueness and referential
// invariants are carried by indexes and foreign keys instead of the mutex.
package postgres

import (
	"context"
	"errors"

	"upfreelance/internal/database"
	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Store struct {
	db database.DB
}

func NewStore(db database.DB) *Store {
	return &Store{db: db}
}

// translateConstraint maps a constraint-violation error onto the sentinel
// errors the memory store returns, so callers cannot tell the stores apart.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case "users_username_key":
			return user.ErrUsernameTaken
		case "users_email_key":
			return user.ErrEmailTaken
		case "skills_name_key":
			return skill.ErrNameTaken
		}
	case codeForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "user_skills_skill_id_fkey":
			return skill.ErrNotFound
		case "proposals_job_id_fkey":
			return job.ErrNotFound
		default:
			// Every other FK in the schema points at users.
			return user.ErrNotFound
		}
	}
	return err
}

func exists(ctx context.Context, db database.DB, query string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
