package services

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/dto"
)

// ContactSvcFacade defines operations on contact-form submissions. The panel
// only reads and deletes them.
type ContactSvcFacade interface {
	// ListContacts retrieves a page of submissions, newest first.
	ListContacts(ctx context.Context, params dto.ListParams) (*dto.ListContactsResponse, error)

	// DeleteContact removes a submission.
	DeleteContact(ctx context.Context, contactID string) error
}
