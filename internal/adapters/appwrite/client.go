// Package appwrite is a thin REST driver for the Appwrite backend plus the
// per-entity repositories built on top of it. It plays the role a SQL
// adapter would in a database-backed service: everything above it talks to
// ports interfaces, everything below is wire format.
package appwrite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Habib7442/apromax-admin/internal/apperrors"
)

// Client is the dependency-injected Appwrite connection. It is constructed
// once at startup and handed to whichever repository needs backend access;
// no package-level singletons.
type Client struct {
	endpoint   string
	projectID  string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an Appwrite client. endpoint must include the API
// version path (e.g. https://cloud.appwrite.io/v1).
func NewClient(endpoint, projectID, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		projectID:  projectID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Endpoint returns the configured API endpoint without a trailing slash.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ProjectID returns the configured project ID.
func (c *Client) ProjectID() string {
	return c.projectID
}

// apiError is Appwrite's error envelope.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// request describes one call to the backend. A non-empty session routes the
// call through the user session instead of the server API key; that is how
// credential checks reach the account endpoints.
type request struct {
	method      string
	path        string
	query       string
	body        io.Reader
	contentType string
	session     string
	noAuth      bool
}

// do executes a request and decodes a JSON response into out (out may be
// nil). The passed context cancels the call if the originating HTTP request
// is aborted; there is no retry on failure.
func (c *Client) do(ctx context.Context, req request, out any) error {
	url := c.endpoint + req.path
	if req.query != "" {
		url += "?" + req.query
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, req.body)
	if err != nil {
		return fmt.Errorf("failed to build appwrite request: %w", err)
	}

	httpReq.Header.Set("X-Appwrite-Project", c.projectID)
	switch {
	case req.session != "":
		httpReq.Header.Set("X-Appwrite-Session", req.session)
	case !req.noAuth && c.apiKey != "":
		httpReq.Header.Set("X-Appwrite-Key", c.apiKey)
	}
	contentType := req.contentType
	if contentType == "" && req.body != nil {
		contentType = "application/json"
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("appwrite request %s %s: %w: %w", req.method, req.path, apperrors.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode appwrite response: %w", err)
	}
	return nil
}

// doJSON marshals body and executes the request with a JSON payload.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, session string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode appwrite payload: %w", err)
	}
	return c.do(ctx, request{
		method:      method,
		path:        path,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
		session:     session,
	}, out)
}

// statusError maps an Appwrite error response onto the application's
// sentinel errors so callers can branch with errors.Is.
func (c *Client) statusError(resp *http.Response) error {
	var apiErr apiError
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrUnauthorized)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", msg, apperrors.ErrExternal)
	}
}
