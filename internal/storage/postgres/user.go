package postgres

import (
	"context"
	"errors"

	"upfreelance/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password, email, first_name, last_name,
	professional_title, bio, country, city, avatar_url, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Password, &u.Email, &u.FirstName, &u.LastName,
		&u.ProfessionalTitle, &u.Bio, &u.Country, &u.City, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, in user.Insert) (user.User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO users (username, password, email, first_name, last_name,
			professional_title, bio, country, city, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+userColumns,
		in.Username, in.Password, in.Email, in.FirstName, in.LastName,
		in.ProfessionalTitle, in.Bio, in.Country, in.City, in.AvatarURL,
	)
	u, err := scanUser(row)
	if err != nil {
		return user.User{}, translateConstraint(err)
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int) (user.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (s *Store) UpdateUser(ctx context.Context, id int, p user.Patch) (user.User, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE users SET
			username = COALESCE($2, username),
			password = COALESCE($3, password),
			email = COALESCE($4, email),
			first_name = COALESCE($5, first_name),
			last_name = COALESCE($6, last_name),
			professional_title = COALESCE($7, professional_title),
			bio = COALESCE($8, bio),
			country = COALESCE($9, country),
			city = COALESCE($10, city),
			avatar_url = COALESCE($11, avatar_url),
			updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.Username, p.Password, p.Email, p.FirstName, p.LastName,
		p.ProfessionalTitle, p.Bio, p.Country, p.City, p.AvatarURL,
	)
	u, err := scanUser(row)
	if err != nil {
		return user.User{}, translateConstraint(err)
	}
	return u, nil
}
