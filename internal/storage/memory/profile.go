package memory

import (
	"context"
	"sort"

	"upfreelance/internal/domain/profile"
	"upfreelance/internal/domain/user"
)

func (s *Store) CreateExperience(_ context.Context, userID int, in profile.ExperienceInsert) (profile.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return profile.Experience{}, user.ErrNotFound
	}

	e := profile.Experience{
		ID:               s.nextExperience,
		UserID:           userID,
		Title:            in.Title,
		Company:          in.Company,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		CurrentlyWorking: defaultBool(in.CurrentlyWorking),
		Description:      in.Description,
	}
	s.nextExperience++
	s.experiences[e.ID] = e
	return e, nil
}

func (s *Store) ListUserExperiences(_ context.Context, userID int) ([]profile.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Experience, 0)
	for _, e := range s.experiences {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (s *Store) UpdateExperience(_ context.Context, id int, p profile.ExperiencePatch) (profile.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.experiences[id]
	if !ok {
		return profile.Experience{}, profile.ErrNotFound
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = p.EndDate
	}
	if p.CurrentlyWorking != nil {
		e.CurrentlyWorking = p.CurrentlyWorking
	}
	if p.Description != nil {
		e.Description = p.Description
	}
	s.experiences[id] = e
	return e, nil
}

func (s *Store) DeleteExperience(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.experiences, id)
	return nil
}

func (s *Store) CreateEducation(_ context.Context, userID int, in profile.EducationInsert) (profile.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return profile.Education{}, user.ErrNotFound
	}

	e := profile.Education{
		ID:                s.nextEducation,
		UserID:            userID,
		Degree:            in.Degree,
		Institution:       in.Institution,
		StartYear:         in.StartYear,
		EndYear:           in.EndYear,
		CurrentlyStudying: defaultBool(in.CurrentlyStudying),
	}
	s.nextEducation++
	s.education[e.ID] = e
	return e, nil
}

func (s *Store) ListUserEducation(_ context.Context, userID int) ([]profile.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Education, 0)
	for _, e := range s.education {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	// Missing end year means "still running" and sorts as far future.
	sort.Slice(out, func(i, j int) bool {
		return educationSortYear(out[i]) > educationSortYear(out[j])
	})
	return out, nil
}

func (s *Store) UpdateEducation(_ context.Context, id int, p profile.EducationPatch) (profile.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.education[id]
	if !ok {
		return profile.Education{}, profile.ErrNotFound
	}
	if p.Degree != nil {
		e.Degree = *p.Degree
	}
	if p.Institution != nil {
		e.Institution = *p.Institution
	}
	if p.StartYear != nil {
		e.StartYear = *p.StartYear
	}
	if p.EndYear != nil {
		e.EndYear = p.EndYear
	}
	if p.CurrentlyStudying != nil {
		e.CurrentlyStudying = p.CurrentlyStudying
	}
	s.education[id] = e
	return e, nil
}

func (s *Store) DeleteEducation(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.education, id)
	return nil
}

func (s *Store) CreatePortfolioItem(_ context.Context, userID int, in profile.PortfolioItemInsert) (profile.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return profile.PortfolioItem{}, user.ErrNotFound
	}

	p := profile.PortfolioItem{
		ID:          s.nextPortfolio,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		Skills:      in.Skills,
	}
	s.nextPortfolio++
	s.portfolio[p.ID] = p
	return p, nil
}

func (s *Store) ListUserPortfolio(_ context.Context, userID int) ([]profile.PortfolioItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.PortfolioItem, 0)
	for _, p := range s.portfolio {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdatePortfolioItem(_ context.Context, id int, patch profile.PortfolioItemPatch) (profile.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.portfolio[id]
	if !ok {
		return profile.PortfolioItem{}, profile.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	if patch.ProjectURL != nil {
		p.ProjectURL = patch.ProjectURL
	}
	if patch.Skills != nil {
		p.Skills = patch.Skills
	}
	s.portfolio[id] = p
	return p, nil
}

func (s *Store) DeletePortfolioItem(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.portfolio, id)
	return nil
}

func (s *Store) CreateService(_ context.Context, userID int, in profile.ServiceInsert) (profile.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return profile.Service{}, user.ErrNotFound
	}

	sv := profile.Service{
		ID:          s.nextService,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		HourlyRate:  in.HourlyRate,
	}
	s.nextService++
	s.services[sv.ID] = sv
	return sv, nil
}

func (s *Store) ListUserServices(_ context.Context, userID int) ([]profile.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Service, 0)
	for _, sv := range s.services {
		if sv.UserID == userID {
			out = append(out, sv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateService(_ context.Context, id int, p profile.ServicePatch) (profile.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sv, ok := s.services[id]
	if !ok {
		return profile.Service{}, profile.ErrNotFound
	}
	if p.Title != nil {
		sv.Title = *p.Title
	}
	if p.Description != nil {
		sv.Description = p.Description
	}
	if p.HourlyRate != nil {
		sv.HourlyRate = *p.HourlyRate
	}
	s.services[id] = sv
	return sv, nil
}

func (s *Store) DeleteService(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.services, id)
	return nil
}

func educationSortYear(e profile.Education) int {
	if e.EndYear == nil {
		return 1 << 30
	}
	return *e.EndYear
}

func defaultBool(b *bool) *bool {
	if b != nil {
		return b
	}
	f := false
	return &f
}
