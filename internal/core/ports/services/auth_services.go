package services

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/dto"
)

// AuthSvcFacade defines the authentication operations. Credentials are
// verified against the backend; the service then issues its own JWT and no
// server-side session survives the login call.
type AuthSvcFacade interface {
	// Login verifies credentials and returns a signed token plus the admin
	// identity.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Me returns the identity behind an authenticated user ID.
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}
