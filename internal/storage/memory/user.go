package memory

import (
	"context"
	"strings"

	"upfreelance/internal/domain/user"
)

func (s *Store) CreateUser(_ context.Context, in user.Insert) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, in.Username) {
			return user.User{}, user.ErrUsernameTaken
		}
		if strings.EqualFold(u.Email, in.Email) {
			return user.User{}, user.ErrEmailTaken
		}
	}

	now := s.now()
	u := user.User{
		ID:                s.nextUserID,
		Username:          in.Username,
		Password:          in.Password,
		Email:             in.Email,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		ProfessionalTitle: in.ProfessionalTitle,
		Bio:               in.Bio,
		Country:           in.Country,
		City:              in.City,
		AvatarURL:         in.AvatarURL,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id int) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, id int, p user.Patch) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	if p.Username != nil && !strings.EqualFold(*p.Username, u.Username) {
		for _, other := range s.users {
			if other.ID != id && strings.EqualFold(other.Username, *p.Username) {
				return user.User{}, user.ErrUsernameTaken
			}
		}
		u.Username = *p.Username
	}
	if p.Email != nil && !strings.EqualFold(*p.Email, u.Email) {
		for _, other := range s.users {
			if other.ID != id && strings.EqualFold(other.Email, *p.Email) {
				return user.User{}, user.ErrEmailTaken
			}
		}
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.ProfessionalTitle != nil {
		u.ProfessionalTitle = p.ProfessionalTitle
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	if p.Country != nil {
		u.Country = p.Country
	}
	if p.City != nil {
		u.City = p.City
	}
	if p.AvatarURL != nil {
		u.AvatarURL = p.AvatarURL
	}

	u.UpdatedAt = s.now()
	s.users[id] = u
	return u, nil
}
