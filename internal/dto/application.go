package dto

import (
	"time"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// ApplicationResponse is one job application as returned by the API.
type ApplicationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Position     string    `json:"position"`
	Experience   float64   `json:"experience"`
	CoverLetter  string    `json:"coverLetter"`
	ResumeFileID string    `json:"resumeFileId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToApplicationResponse converts a domain application to its API representation.
func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		Position:     a.Position,
		Experience:   a.Experience,
		CoverLetter:  a.CoverLetter,
		ResumeFileID: a.ResumeFileID,
		CreatedAt:    a.CreatedAt,
	}
}

// ToListApplicationResponse converts a slice of domain applications.
func ToListApplicationResponse(apps []domain.Application) []ApplicationResponse {
	res := make([]ApplicationResponse, len(apps))
	for i := range apps {
		res[i] = ToApplicationResponse(&apps[i])
	}
	return res
}

// ListApplicationsResponse wraps a page of applications.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int64                 `json:"total"`
	NextCursor   string                `json:"nextCursor,omitempty"`
}

// ResumeURLResponse carries the derived view URL of an applicant's resume.
type ResumeURLResponse struct {
	URL string `json:"url"`
}
