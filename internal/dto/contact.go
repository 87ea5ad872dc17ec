package dto

import (
	"time"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// ContactResponse is one contact-form submission as returned by the API.
type ContactResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	Service     string    `json:"service"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToContactResponse converts a domain contact to its API representation.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		CompanyName: c.CompanyName,
		Service:     c.Service,
		Message:     c.Message,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListContactResponse converts a slice of domain contacts.
func ToListContactResponse(contacts []domain.Contact) []ContactResponse {
	res := make([]ContactResponse, len(contacts))
	for i := range contacts {
		res[i] = ToContactResponse(&contacts[i])
	}
	return res
}

// ListContactsResponse wraps a page of submissions.
type ListContactsResponse struct {
	Contacts   []ContactResponse `json:"contacts"`
	Total      int64             `json:"total"`
	NextCursor string            `json:"nextCursor,omitempty"`
}
