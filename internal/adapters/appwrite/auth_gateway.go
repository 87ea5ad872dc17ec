package appwrite

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/core/domain"
	"github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
)

type authGateway struct {
	account *Account
	users   *Users
}

// NewAuthGateway creates an AuthGateway over the account and users services.
func NewAuthGateway(account *Account, users *Users) repositories.AuthGateway {
	return &authGateway{account: account, users: users}
}

func (g *authGateway) CreateEmailSession(ctx context.Context, email, password string) (string, error) {
	session, err := g.account.CreateEmailSession(ctx, email, password)
	if err != nil {
		return "", err
	}
	return session.Secret, nil
}

func (g *authGateway) GetAccount(ctx context.Context, sessionSecret string) (*domain.AdminUser, error) {
	user, err := g.account.Get(ctx, sessionSecret)
	if err != nil {
		return nil, err
	}
	return &domain.AdminUser{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (g *authGateway) DeleteCurrentSession(ctx context.Context, sessionSecret string) error {
	return g.account.DeleteCurrentSession(ctx, sessionSecret)
}

func (g *authGateway) GetUserByID(ctx context.Context, userID string) (*domain.AdminUser, error) {
	user, err := g.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.AdminUser{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
