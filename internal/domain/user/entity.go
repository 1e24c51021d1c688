package user

import "time"

type User struct {
	ID                int       `json:"id"`
	Username          string    `json:"username"`
	Password          string    `json:"-"`
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

// Insert is the shape accepted on registration. ID and timestamps are
// assigned by the store.
type Insert struct {
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	Email             string  `json:"email"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	ProfessionalTitle *string `json:"professionalTitle"`
	Bio               *string `json:"bio"`
	Country           *string `json:"country"`
	City              *string `json:"city"`
	AvatarURL         *string `json:"avatarUrl"`
}

// Patch enumerates the fields a partial update may change. A nil field is
// left untouched. ID and CreatedAt are not representable here.
type Patch struct {
	Username          *string `json:"username"`
	Password          *string `json:"password"`
	Email             *string `json:"email"`
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	ProfessionalTitle *string `json:"professionalTitle"`
	Bio               *string `json:"bio"`
	Country           *string `json:"country"`
	City              *string `json:"city"`
	AvatarURL         *string `json:"avatarUrl"`
}

func (p Patch) Empty() bool {
	return p.Username == nil && p.Password == nil && p.Email == nil &&
		p.FirstName == nil && p.LastName == nil && p.ProfessionalTitle == nil &&
		p.Bio == nil && p.Country == nil && p.City == nil && p.AvatarURL == nil
}
