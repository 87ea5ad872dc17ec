package services

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/dto"
)

// ApplicationSvcFacade defines operations on job applications.
type ApplicationSvcFacade interface {
	// ListApplications retrieves a page of applications, newest first.
	ListApplications(ctx context.Context, params dto.ListParams) (*dto.ListApplicationsResponse, error)

	// DeleteApplication removes an application.
	DeleteApplication(ctx context.Context, applicationID string) error

	// ResumeURL resolves the view URL of an applicant's resume.
	ResumeURL(ctx context.Context, applicationID string) (string, error)
}
