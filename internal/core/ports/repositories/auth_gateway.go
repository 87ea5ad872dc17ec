package repositories

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
)

// AuthGateway abstracts the backend's account endpoints. The service owns no
// user records; credential checks and identity lookups are delegated
// entirely to the backend.
type AuthGateway interface {
	// CreateEmailSession verifies an email/password pair and returns the
	// secret of the session it opened.
	CreateEmailSession(ctx context.Context, email, password string) (string, error)

	// GetAccount fetches the identity behind a session secret.
	GetAccount(ctx context.Context, sessionSecret string) (*domain.AdminUser, error)

	// DeleteCurrentSession closes the session identified by the secret.
	DeleteCurrentSession(ctx context.Context, sessionSecret string) error

	// GetUserByID fetches an admin identity through the server-side users
	// API. Used to answer "who am I" for an already-issued token.
	GetUserByID(ctx context.Context, userID string) (*domain.AdminUser, error)
}
