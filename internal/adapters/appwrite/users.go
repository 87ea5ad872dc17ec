package appwrite

import (
	"context"
	"fmt"
	"net/http"
)

// Users wraps the server-side users endpoints. Unlike the account endpoints
// these authenticate with the API key, so they work without a live session.
type Users struct {
	client *Client
}

// NewUsers creates a Users service on the given client.
func NewUsers(client *Client) *Users {
	return &Users{client: client}
}

// GetUser fetches a user record by ID.
func (u *Users) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	err := u.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/" + userID,
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return &user, nil
}
