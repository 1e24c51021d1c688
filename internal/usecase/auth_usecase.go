package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthUsecase interface {
	Register(ctx context.Context, in user.Insert) (user.User, TokenPair, error)
	Login(ctx context.Context, username, password string) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (a *Auth) Register(ctx context.Context, in user.Insert) (user.User, TokenPair, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	in.Password = string(hash)

	// The store performs the uniqueness check and the insert atomically, so
	// two racing registrations cannot both get through.
	u, err := a.users.CreateUser(ctx, in)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}

	pair, err := a.tokenPair(u)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitize(u), pair, nil
}

func (a *Auth) Login(ctx context.Context, username, password string) (user.User, TokenPair, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	u, err := a.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := a.tokenPair(u)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return sanitize(u), pair, nil
}

func (a *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := a.jwt.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if !a.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidCredentials
	}

	u, err := a.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}

	pair, err := a.tokenPair(u)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (a *Auth) tokenPair(u user.User) (TokenPair, error) {
	access, err := a.jwt.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := a.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func sanitize(u user.User) user.User {
	u.Password = ""
	return u
}
