package appwrite

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// File is the storage record returned after an upload.
type File struct {
	ID       string `json:"$id"`
	BucketID string `json:"bucketId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// Storage wraps the file bucket endpoints.
type Storage struct {
	client *Client
}

// NewStorage creates a Storage service on the given client.
func NewStorage(client *Client) *Storage {
	return &Storage{client: client}
}

// CreateFile uploads a file into a bucket with a server-generated ID.
func (s *Storage) CreateFile(ctx context.Context, bucketID, filename string, content io.Reader) (*File, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("fileId", "unique()"); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	var file File
	err = s.client.do(ctx, request{
		method:      http.MethodPost,
		path:        "/storage/buckets/" + bucketID + "/files",
		body:        &buf,
		contentType: writer.FormDataContentType(),
	}, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to bucket %s: %w", bucketID, err)
	}
	return &file, nil
}

// DeleteFile removes a file from a bucket.
func (s *Storage) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	err := s.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/storage/buckets/" + bucketID + "/files/" + fileID,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete file %s from bucket %s: %w", fileID, bucketID, err)
	}
	return nil
}

// FileViewURL builds the publicly fetchable view URL for a stored file.
// This is string templating by convention, not an API call; the format must
// match what the backend serves or images and downloads stop resolving.
func (s *Storage) FileViewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		s.client.Endpoint(), bucketID, fileID, s.client.ProjectID())
}
