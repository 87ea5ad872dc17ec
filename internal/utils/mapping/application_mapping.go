package mapping

import (
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/models"
)

// ToDomainApplication converts a stored job application document.
func ToDomainApplication(m models.Application) domain.Application {
	return domain.Application{
		DocumentFields: domain.DocumentFields{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Position:     m.Position,
		Experience:   m.Experience,
		CoverLetter:  m.CoverLetter,
		ResumeFileID: m.ResumeFileID,
	}
}

// ToDomainApplicationSlice converts a slice of stored applications.
func ToDomainApplicationSlice(ms []models.Application) []domain.Application {
	ds := make([]domain.Application, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApplication(m)
	}
	return ds
}
