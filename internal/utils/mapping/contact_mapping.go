package mapping

import (
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/models"
)

// ToDomainContact converts a stored contact document to its domain form.
func ToDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		DocumentFields: domain.DocumentFields{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		CompanyName: m.CompanyName,
		Service:     m.Service,
		Message:     m.Message,
	}
}

// ToDomainContactSlice converts a slice of stored contacts.
func ToDomainContactSlice(ms []models.Contact) []domain.Contact {
	ds := make([]domain.Contact, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContact(m)
	}
	return ds
}
