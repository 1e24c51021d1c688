package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"upfreelance/internal/domain/user"
	"upfreelance/internal/pkg/jwt"
	"upfreelance/internal/storage/memory"
)

func newAuth(t *testing.T) (*Auth, *memory.Store) {
	t.Helper()
	store := memory.New()
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUsecase(store, svc), store
}

func registerInput(username, email string) user.Insert {
	return user.Insert{
		Username:  username,
		Password:  "s3cret",
		Email:     email,
		FirstName: "Alice",
		LastName:  "Doe",
	}
}

func TestRegisterStripsPasswordAndIssuesTokens(t *testing.T) {
	auth, store := newAuth(t)

	u, pair, err := auth.Register(context.Background(), registerInput("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Password != "" {
		t.Errorf("returned user still carries a password")
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Errorf("expected both tokens, got %+v", pair)
	}

	// The stored password must be a bcrypt hash, not the plaintext.
	stored, err := store.GetUserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if stored.Password == "s3cret" || stored.Password == "" {
		t.Errorf("stored password is not hashed: %q", stored.Password)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, _ := newAuth(t)

	if _, _, err := auth.Register(context.Background(), registerInput("alice", "alice@example.com")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, _, err := auth.Register(context.Background(), registerInput("alice", "other@example.com"))
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	auth, _ := newAuth(t)

	in := registerInput("   ", "alice@example.com")
	if _, _, err := auth.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestLogin(t *testing.T) {
	auth, _ := newAuth(t)

	if _, _, err := auth.Register(context.Background(), registerInput("alice", "alice@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	u, pair, err := auth.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Username != "alice" || u.Password != "" {
		t.Errorf("unexpected user %+v", u)
	}
	if pair.Access == "" {
		t.Errorf("expected an access token")
	}

	if _, _, err := auth.Login(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.Login(context.Background(), "nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh(t *testing.T) {
	auth, _ := newAuth(t)

	_, pair, err := auth.Register(context.Background(), registerInput("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	next, err := auth.Refresh(context.Background(), pair.Refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if next.Access == "" || next.Refresh == "" {
		t.Errorf("expected a fresh pair, got %+v", next)
	}

	// An access token must not pass as a refresh token.
	if _, err := auth.Refresh(context.Background(), pair.Access); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("access token accepted for refresh: err = %v", err)
	}
	if _, err := auth.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage token: err = %v, want ErrInvalidCredentials", err)
	}
}
