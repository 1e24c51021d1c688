// Package storage defines the composite contract both the in-memory and the
// Postgres stores satisfy. The per-aggregate interfaces live next to their
// entities under internal/domain.
package storage

import (
	"upfreelance/internal/domain/job"
	"upfreelance/internal/domain/profile"
	"upfreelance/internal/domain/proposal"
	"upfreelance/internal/domain/skill"
	"upfreelance/internal/domain/user"
)

type Store interface {
	user.Repository
	skill.Repository
	profile.Repository
	job.Repository
	proposal.Repository
}
