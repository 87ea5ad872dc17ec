package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an Appwrite account session. Secret is only populated on
// creation and authenticates follow-up account calls.
type Session struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

// User is the account record behind a session.
type User struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Account wraps the session endpoints used for admin login.
type Account struct {
	client *Client
}

// NewAccount creates an Account service on the given client.
func NewAccount(client *Client) *Account {
	return &Account{client: client}
}

// CreateEmailSession verifies credentials by opening an email/password
// session. The call carries only the project header; the API key must not be
// attached or the backend rejects the session scope.
func (a *Account) CreateEmailSession(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	var session Session
	err = a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/account/sessions/email",
		body:   bytes.NewReader(payload),
		noAuth: true,
	}, &session)
	if err != nil {
		return nil, fmt.Errorf("failed to create email session: %w", err)
	}
	return &session, nil
}

// Get fetches the account behind a session secret.
func (a *Account) Get(ctx context.Context, sessionSecret string) (*User, error) {
	var user User
	err := a.client.do(ctx, request{
		method:  http.MethodGet,
		path:    "/account",
		session: sessionSecret,
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &user, nil
}

// DeleteCurrentSession closes the session identified by the secret.
func (a *Account) DeleteCurrentSession(ctx context.Context, sessionSecret string) error {
	err := a.client.do(ctx, request{
		method:  http.MethodDelete,
		path:    "/account/sessions/current",
		session: sessionSecret,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
