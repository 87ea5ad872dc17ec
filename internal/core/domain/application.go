package domain

// Application is a job application submitted through the careers page.
// ResumeFileID points into the resumes bucket; the view URL is derived,
// never stored.
type Application struct {
	DocumentFields
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Experience   float64 `json:"experience"` // years
	CoverLetter  string  `json:"coverLetter"`
	ResumeFileID string  `json:"resumeFileId"`
}
