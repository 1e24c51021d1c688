package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"upfreelance/internal/domain/user"
)

type UserUsecase interface {
	GetUser(ctx context.Context, id int) (user.User, error)
	UpdateUser(ctx context.Context, id int, p user.Patch) (user.User, error)
}

type User struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *User {
	return &User{users: users}
}

func (u *User) GetUser(ctx context.Context, id int) (user.User, error) {
	got, err := u.users.GetUser(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	return sanitize(got), nil
}

func (u *User) UpdateUser(ctx context.Context, id int, p user.Patch) (user.User, error) {
	if p.Empty() {
		return user.User{}, ErrInvalidInput
	}

	if p.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrInternal
		}
		hashed := string(hash)
		p.Password = &hashed
	}

	got, err := u.users.UpdateUser(ctx, id, p)
	if err != nil {
		return user.User{}, err
	}
	return sanitize(got), nil
}
