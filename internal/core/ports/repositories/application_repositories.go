package repositories

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// ApplicationReader defines read operations for job applications.
type ApplicationReader interface {
	// FindApplicationByID retrieves a specific application by its document ID.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// ListApplications retrieves a page of applications, newest first.
	ListApplications(ctx context.Context, limit int, cursorAfter string) ([]domain.Application, int64, error)

	// CountApplications returns the total number of applications.
	CountApplications(ctx context.Context) (int64, error)
}

// ApplicationWriter defines write operations for job applications.
type ApplicationWriter interface {
	// DeleteApplication removes an application.
	DeleteApplication(ctx context.Context, applicationID string) error
}

// ApplicationRepositoryFacade combines all application repository interfaces.
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
}
