package models

import "time"

// Application is a job application document from the careers collection.
type Application struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Experience   float64 `json:"experience"`
	CoverLetter  string  `json:"coverLetter"`
	ResumeFileID string  `json:"resumeFileId"`
}
