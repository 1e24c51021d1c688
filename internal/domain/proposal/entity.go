package proposal

import "time"

type Proposal struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	JobID         int       `json:"jobId"`
	Content       string    `json:"content"`
	GeneratedDate time.Time `json:"generatedDate"`
}

type Insert struct {
	UserID  int    `json:"userId"`
	JobID   int    `json:"jobId"`
	Content string `json:"content"`
}
