// Package memory holds the in-process storage engine. Every operation is a
// single critical section over one shared mutex, so uniqueness checks and
// inserts cannot interleave across concurrent requests.
package memory

import (
	"sync"
	"time"

	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/profile"
	"upfreelance/internal/domain/proposal"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users       map[int]user.User
	skills      map[int]skill.Skill
	skillOrder  []int
	userSkills  []skill.UserSkill
	experiences map[int]profile.Experience
	education   map[int]profile.Education
	portfolio   map[int]profile.PortfolioItem
	services    map[int]profile.Service
	jobs        map[int]job.Job
	proposals   map[int]proposal.Proposal

	nextUserID      int
	nextSkillID     int
	nextUserSkillID int
	nextExperience  int
	nextEducation   int
	nextPortfolio   int
	nextService     int
	nextJobID       int
	nextProposalID  int
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock lets tests pin the timestamps the store assigns.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		now:             now,
		users:           make(map[int]user.User),
		skills:          make(map[int]skill.Skill),
		experiences:     make(map[int]profile.Experience),
		education:       make(map[int]profile.Education),
		portfolio:       make(map[int]profile.PortfolioItem),
		services:        make(map[int]profile.Service),
		jobs:            make(map[int]job.Job),
		proposals:       make(map[int]proposal.Proposal),
		nextUserID:      1,
		nextSkillID:     1,
		nextUserSkillID: 1,
		nextExperience:  1,
		nextEducation:   1,
		nextPortfolio:   1,
		nextService:     1,
		nextJobID:       1,
		nextProposalID:  1,
	}
}
