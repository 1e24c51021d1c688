package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// Repository is the user slice of the storage engine. CreateUser performs
// the uniqueness check and the insert as one atomic operation.
type Repository interface {
	CreateUser(ctx context.Context, in Insert) (User, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUser(ctx context.Context, id int, p Patch) (User, error)
}
