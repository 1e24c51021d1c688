package postgres

import (
	"context"

	"upfreelance/internal/database"
)

// schemaDDL mirrors the entity model: serial per-entity counters, unique
// username/email/skill-name, child tables keyed by owner. Uniqueness is
// case-insensitive, the same relation the memory store enforces, so the
// unique keys are expression indexes over lower(); their names are what
// translateConstraint switches on.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	password TEXT NOT NULL,
	email TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	professional_title TEXT,
	bio TEXT,
	country TEXT,
	city TEXT,
	avatar_url TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (lower(username));
CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (lower(email));

CREATE TABLE IF NOT EXISTS skills (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS skills_name_key ON skills (lower(name));

CREATE TABLE IF NOT EXISTS user_skills (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	skill_id INTEGER NOT NULL,
	CONSTRAINT user_skills_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT user_skills_skill_id_fkey FOREIGN KEY (skill_id) REFERENCES skills (id) ON DELETE CASCADE,
	CONSTRAINT user_skills_pair_key UNIQUE (user_id, skill_id)
);

CREATE TABLE IF NOT EXISTS experiences (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ,
	currently_working BOOLEAN DEFAULT FALSE,
	description TEXT,
	CONSTRAINT experiences_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS education (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	degree TEXT NOT NULL,
	institution TEXT NOT NULL,
	start_year INTEGER NOT NULL,
	end_year INTEGER,
	currently_studying BOOLEAN DEFAULT FALSE,
	CONSTRAINT education_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS portfolio_items (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	image_url TEXT,
	project_url TEXT,
	skills TEXT[],
	CONSTRAINT portfolio_items_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS services (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	hourly_rate INTEGER NOT NULL,
	CONSTRAINT services_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS jobs (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	pay_rate TEXT NOT NULL,
	duration TEXT,
	location TEXT,
	skills TEXT[],
	posted_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	company_name TEXT
);

CREATE TABLE IF NOT EXISTS proposals (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL,
	job_id INTEGER NOT NULL,
	content TEXT NOT NULL,
	generated_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT proposals_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id),
	CONSTRAINT proposals_job_id_fkey FOREIGN KEY (job_id) REFERENCES jobs (id)
);
`

func EnsureSchema(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, schemaDDL)
	return err
}
