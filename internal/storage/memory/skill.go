package memory

import (
	"context"
	"strings"

	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"
)

func (s *Store) CreateSkill(_ context.Context, name string) (skill.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sk := range s.skills {
		if strings.EqualFold(sk.Name, name) {
			return skill.Skill{}, skill.ErrNameTaken
		}
	}

	sk := skill.Skill{ID: s.nextSkillID, Name: name}
	s.nextSkillID++
	s.skills[sk.ID] = sk
	s.skillOrder = append(s.skillOrder, sk.ID)
	return sk, nil
}

func (s *Store) ListSkills(_ context.Context, page, limit int) ([]skill.Skill, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.skillOrder)
	out := make([]skill.Skill, 0, limit)
	if page < 1 || limit < 1 {
		return out, total, nil
	}

	start := (page - 1) * limit
	if start >= total {
		return out, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	for _, id := range s.skillOrder[start:end] {
		out = append(out, s.skills[id])
	}
	return out, total, nil
}

func (s *Store) DeleteSkill(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.skills[id]; !ok {
		return nil
	}
	delete(s.skills, id)
	for i, ordered := range s.skillOrder {
		if ordered == id {
			s.skillOrder = append(s.skillOrder[:i], s.skillOrder[i+1:]...)
			break
		}
	}
	// Links to the deleted skill are left dangling; ListUserSkills skips them.
	return nil
}

func (s *Store) AddUserSkill(_ context.Context, userID, skillID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return user.ErrNotFound
	}
	if _, ok := s.skills[skillID]; !ok {
		return skill.ErrNotFound
	}
	for _, link := range s.userSkills {
		if link.UserID == userID && link.SkillID == skillID {
			return nil
		}
	}

	s.userSkills = append(s.userSkills, skill.UserSkill{
		ID:      s.nextUserSkillID,
		UserID:  userID,
		SkillID: skillID,
	})
	s.nextUserSkillID++
	return nil
}

func (s *Store) RemoveUserSkill(_ context.Context, userID, skillID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, link := range s.userSkills {
		if link.UserID == userID && link.SkillID == skillID {
			s.userSkills = append(s.userSkills[:i], s.userSkills[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) ListUserSkills(_ context.Context, userID int) ([]skill.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]skill.Skill, 0)
	for _, link := range s.userSkills {
		if link.UserID != userID {
			continue
		}
		sk, ok := s.skills[link.SkillID]
		if !ok {
			continue
		}
		out = append(out, sk)
	}
	return out, nil
}
