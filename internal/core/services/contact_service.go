package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/utils/pagination"
)

type contactService struct {
	repo portsrepo.ContactRepositoryFacade
}

// NewContactService creates the contact submissions service.
func NewContactService(repo portsrepo.ContactRepositoryFacade) portssvc.ContactSvcFacade {
	return &contactService{repo: repo}
}

func (s *contactService) ListContacts(ctx context.Context, params dto.ListParams) (*dto.ListContactsResponse, error) {
	cursorAfter, err := decodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	contacts, total, err := s.repo.ListContacts(ctx, params.Limit, cursorAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	resp := &dto.ListContactsResponse{
		Contacts: dto.ToListContactResponse(contacts),
		Total:    total,
	}
	if len(contacts) == params.Limit && params.Limit > 0 {
		last := contacts[len(contacts)-1]
		resp.NextCursor = pagination.EncodeToken(last.ID, last.CreatedAt)
	}
	return resp, nil
}

func (s *contactService) DeleteContact(ctx context.Context, contactID string) error {
	if err := s.repo.DeleteContact(ctx, contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Contact submission deleted", slog.String("contact_id", contactID))
	return nil
}
