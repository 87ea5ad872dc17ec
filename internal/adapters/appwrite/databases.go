package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DocumentMeta holds the server-assigned fields present on every document.
type DocumentMeta struct {
	ID        string `json:"$id"`
	CreatedAt string `json:"$createdAt"`
	UpdatedAt string `json:"$updatedAt"`
}

// Created parses the server creation timestamp; a malformed value yields the
// zero time rather than an error.
func (m DocumentMeta) Created() time.Time {
	t, _ := time.Parse(time.RFC3339, m.CreatedAt)
	return t
}

// Updated parses the server update timestamp, zero time on parse failure.
func (m DocumentMeta) Updated() time.Time {
	t, _ := time.Parse(time.RFC3339, m.UpdatedAt)
	return t
}

// DocumentList is the list envelope returned by the documents endpoint.
// Documents stay raw so each repository can decode into its own model.
type DocumentList struct {
	Total     int               `json:"total"`
	Documents []json.RawMessage `json:"documents"`
}

// ListOptions narrows a document listing. CursorAfter is the $id of the last
// document of the previous page.
type ListOptions struct {
	Limit       int
	CursorAfter string
	OrderDesc   string
}

// Databases wraps the document CRUD endpoints of one database.
type Databases struct {
	client     *Client
	databaseID string
}

// NewDatabases creates a Databases service bound to the given database.
func NewDatabases(client *Client, databaseID string) *Databases {
	return &Databases{client: client, databaseID: databaseID}
}

func (d *Databases) documentsPath(collectionID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", d.databaseID, collectionID)
}

// ListDocuments fetches one page of documents from a collection.
func (d *Databases) ListDocuments(ctx context.Context, collectionID string, opts ListOptions) (*DocumentList, error) {
	values := url.Values{}
	if opts.Limit > 0 {
		values.Add("queries[]", "limit("+strconv.Itoa(opts.Limit)+")")
	}
	if opts.CursorAfter != "" {
		values.Add("queries[]", fmt.Sprintf("cursorAfter(%q)", opts.CursorAfter))
	}
	if opts.OrderDesc != "" {
		values.Add("queries[]", fmt.Sprintf("orderDesc(%q)", opts.OrderDesc))
	}

	var list DocumentList
	err := d.client.do(ctx, request{
		method: http.MethodGet,
		path:   d.documentsPath(collectionID),
		query:  values.Encode(),
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", collectionID, err)
	}
	return &list, nil
}

// GetDocument fetches a single document into out.
func (d *Databases) GetDocument(ctx context.Context, collectionID, documentID string, out any) error {
	err := d.client.do(ctx, request{
		method: http.MethodGet,
		path:   d.documentsPath(collectionID) + "/" + documentID,
	}, out)
	if err != nil {
		return fmt.Errorf("failed to get document %s/%s: %w", collectionID, documentID, err)
	}
	return nil
}

// CreateDocument creates a document with server-generated ID and decodes the
// created record (including $id and timestamps) into out.
func (d *Databases) CreateDocument(ctx context.Context, collectionID string, data any, out any) error {
	body := map[string]any{
		"documentId": "unique()",
		"data":       data,
	}
	if err := d.client.doJSON(ctx, http.MethodPost, d.documentsPath(collectionID), body, "", out); err != nil {
		return fmt.Errorf("failed to create document in %s: %w", collectionID, err)
	}
	return nil
}

// UpdateDocument patches a document's fields and decodes the updated record
// into out.
func (d *Databases) UpdateDocument(ctx context.Context, collectionID, documentID string, data any, out any) error {
	body := map[string]any{"data": data}
	path := d.documentsPath(collectionID) + "/" + documentID
	if err := d.client.doJSON(ctx, http.MethodPatch, path, body, "", out); err != nil {
		return fmt.Errorf("failed to update document %s/%s: %w", collectionID, documentID, err)
	}
	return nil
}

// DeleteDocument removes a document.
func (d *Databases) DeleteDocument(ctx context.Context, collectionID, documentID string) error {
	err := d.client.do(ctx, request{
		method: http.MethodDelete,
		path:   d.documentsPath(collectionID) + "/" + documentID,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collectionID, documentID, err)
	}
	return nil
}

// CountDocuments returns the collection's total without fetching documents.
func (d *Databases) CountDocuments(ctx context.Context, collectionID string) (int, error) {
	list, err := d.ListDocuments(ctx, collectionID, ListOptions{Limit: 1})
	if err != nil {
		return 0, err
	}
	return list.Total, nil
}
