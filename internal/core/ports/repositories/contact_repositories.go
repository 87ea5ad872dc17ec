package repositories

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// ContactReader defines read operations for contact-form submissions.
type ContactReader interface {
	// ListContacts retrieves a page of submissions, newest first.
	ListContacts(ctx context.Context, limit int, cursorAfter string) ([]domain.Contact, int64, error)

	// CountContacts returns the total number of submissions.
	CountContacts(ctx context.Context) (int64, error)
}

// ContactWriter defines write operations for contact-form submissions.
// Submissions are created by the public site, so the only write here is
// deletion.
type ContactWriter interface {
	// DeleteContact removes a submission.
	DeleteContact(ctx context.Context, contactID string) error
}

// ContactRepositoryFacade combines all contact repository interfaces.
type ContactRepositoryFacade interface {
	ContactReader
	ContactWriter
}
