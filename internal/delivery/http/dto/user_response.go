// Package dto holds the wire shapes that differ from the domain entities.
package dto

import (
	"time"

	"upfreelance/internal/domain/user"
)

// UserResponse is the public view of a user. The password never appears here,
// even if a future entity change drops the json:"-" tag.
type UserResponse struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	ProfessionalTitle *string   `json:"professionalTitle"`
	Bio               *string   `json:"bio"`
	Country           *string   `json:"country"`
	City              *string   `json:"city"`
	AvatarURL         *string   `json:"avatarUrl"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfessionalTitle: u.ProfessionalTitle,
		Bio:               u.Bio,
		Country:           u.Country,
		City:              u.City,
		AvatarURL:         u.AvatarURL,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
