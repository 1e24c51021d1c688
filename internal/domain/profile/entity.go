package profile

import "time"

type Experience struct {
	ID               int        `json:"id"`
	UserID           int        `json:"userId"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	CurrentlyWorking *bool      `json:"currentlyWorking"`
	Description      *string    `json:"description"`
}

type Education struct {
	ID                int    `json:"id"`
	UserID            int    `json:"userId"`
	Degree            string `json:"degree"`
	Institution       string `json:"institution"`
	StartYear         int    `json:"startYear"`
	EndYear           *int   `json:"endYear"`
	CurrentlyStudying *bool  `json:"currentlyStudying"`
}

type PortfolioItem struct {
	ID          int      `json:"id"`
	UserID      int      `json:"userId"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	ProjectURL  *string  `json:"projectUrl"`
	Skills      []string `json:"skills"`
}

type Service struct {
	ID          int     `json:"id"`
	UserID      int     `json:"userId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	HourlyRate  int     `json:"hourlyRate"`
}

type ExperienceInsert struct {
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	CurrentlyWorking *bool      `json:"currentlyWorking"`
	Description      *string    `json:"description"`
}

type EducationInsert struct {
	Degree            string `json:"degree"`
	Institution       string `json:"institution"`
	StartYear         int    `json:"startYear"`
	EndYear           *int   `json:"endYear"`
	CurrentlyStudying *bool  `json:"currentlyStudying"`
}

type PortfolioItemInsert struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	ProjectURL  *string  `json:"projectUrl"`
	Skills      []string `json:"skills"`
}

type ServiceInsert struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	HourlyRate  int     `json:"hourlyRate"`
}

type ExperiencePatch struct {
	Title            *string    `json:"title"`
	Company          *string    `json:"company"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	CurrentlyWorking *bool      `json:"currentlyWorking"`
	Description      *string    `json:"description"`
}

type EducationPatch struct {
	Degree            *string `json:"degree"`
	Institution       *string `json:"institution"`
	StartYear         *int    `json:"startYear"`
	EndYear           *int    `json:"endYear"`
	CurrentlyStudying *bool   `json:"currentlyStudying"`
}

type PortfolioItemPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	ProjectURL  *string  `json:"projectUrl"`
	Skills      []string `json:"skills"`
}

type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	HourlyRate  *int    `json:"hourlyRate"`
}
