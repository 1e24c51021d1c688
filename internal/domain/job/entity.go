package job

import "time"

type Job struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PayRate     string    `json:"payRate"`
	Duration    *string   `json:"duration"`
	Location    *string   `json:"location"`
	Skills      []string  `json:"skills"`
	PostedDate  time.Time `json:"postedDate"`
	CompanyName *string   `json:"companyName"`
}

type Insert struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PayRate     string     `json:"payRate"`
	Duration    *string    `json:"duration"`
	Location    *string    `json:"location"`
	Skills      []string   `json:"skills"`
	PostedDate  *time.Time `json:"postedDate"`
	CompanyName *string    `json:"companyName"`
}
