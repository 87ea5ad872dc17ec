package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/utils/pagination"
)

type applicationService struct {
	repo    portsrepo.ApplicationRepositoryFacade
	resumes portsrepo.FileStore
}

// NewApplicationService creates the job applications service.
func NewApplicationService(repo portsrepo.ApplicationRepositoryFacade, resumes portsrepo.FileStore) portssvc.ApplicationSvcFacade {
	return &applicationService{repo: repo, resumes: resumes}
}

func (s *applicationService) ListApplications(ctx context.Context, params dto.ListParams) (*dto.ListApplicationsResponse, error) {
	cursorAfter, err := decodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	apps, total, err := s.repo.ListApplications(ctx, params.Limit, cursorAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	resp := &dto.ListApplicationsResponse{
		Applications: dto.ToListApplicationResponse(apps),
		Total:        total,
	}
	if len(apps) == params.Limit && params.Limit > 0 {
		last := apps[len(apps)-1]
		resp.NextCursor = pagination.EncodeToken(last.ID, last.CreatedAt)
	}
	return resp, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, applicationID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Drop the stored resume first so the bucket does not accumulate
	// orphans. A missing file is fine; the document still goes away.
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("failed to load application for delete: %w", err)
	}
	if app.ResumeFileID != "" {
		if err := s.resumes.DeleteFile(ctx, app.ResumeFileID); err != nil {
			logger.Warn("Failed to delete resume file", slog.String("error", err.Error()), slog.String("file_id", app.ResumeFileID))
		}
	}

	if err := s.repo.DeleteApplication(ctx, applicationID); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	logger.Info("Application deleted", slog.String("application_id", applicationID))
	return nil
}

func (s *applicationService) ResumeURL(ctx context.Context, applicationID string) (string, error) {
	app, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return "", fmt.Errorf("failed to load application: %w", err)
	}
	if app.ResumeFileID == "" {
		return "", fmt.Errorf("application has no resume: %w", apperrors.ErrNotFound)
	}
	return s.resumes.FileViewURL(app.ResumeFileID), nil
}
