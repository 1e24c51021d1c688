package postgres

import (
	"errors"
	"strings"
	"testing"

	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"

	"github.com/jackc/pgx/v5/pgconn"
)

// The unique keys must be case-insensitive so both stores enforce the same
// uniqueness relation: "Alice" and "alice" cannot coexist under either one.
func TestSchemaUniqueIndexesAreCaseInsensitive(t *testing.T) {
	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (lower(username))",
		"CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (lower(email))",
		"CREATE UNIQUE INDEX IF NOT EXISTS skills_name_key ON skills (lower(name))",
	}
	for _, idx := range indexes {
		if !strings.Contains(schemaDDL, idx) {
			t.Errorf("schema missing case-insensitive unique index:\n%s", idx)
		}
	}

	// No leftover exact-match unique constraints on the same columns.
	for _, stale := range []string{"UNIQUE (username)", "UNIQUE (email)", "UNIQUE (name)"} {
		if strings.Contains(schemaDDL, stale) {
			t.Errorf("schema still declares exact-match constraint %q", stale)
		}
	}
}

func TestTranslateConstraint(t *testing.T) {
	cases := []struct {
		code       string
		constraint string
		want       error
	}{
		{codeUniqueViolation, "users_username_key", user.ErrUsernameTaken},
		{codeUniqueViolation, "users_email_key", user.ErrEmailTaken},
		{codeUniqueViolation, "skills_name_key", skill.ErrNameTaken},
		{codeForeignKeyViolation, "user_skills_skill_id_fkey", skill.ErrNotFound},
		{codeForeignKeyViolation, "proposals_job_id_fkey", job.ErrNotFound},
		{codeForeignKeyViolation, "experiences_user_id_fkey", user.ErrNotFound},
	}
	for _, tc := range cases {
		got := translateConstraint(&pgconn.PgError{Code: tc.code, ConstraintName: tc.constraint})
		if !errors.Is(got, tc.want) {
			t.Errorf("translateConstraint(%s, %s) = %v, want %v", tc.code, tc.constraint, got, tc.want)
		}
	}

	// Every unique-key name the schema declares must be one the translator
	// recognizes, otherwise a violation surfaces as a raw pg error.
	for _, name := range []string{"users_username_key", "users_email_key", "skills_name_key"} {
		if !strings.Contains(schemaDDL, name) {
			t.Errorf("schema does not declare %s", name)
		}
	}

	plain := errors.New("not a pg error")
	if got := translateConstraint(plain); got != plain {
		t.Errorf("non-pg error rewritten to %v", got)
	}
}
