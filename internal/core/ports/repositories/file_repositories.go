package repositories

import (
	"context"
	"io"
)

// FileStore abstracts a single storage bucket. One instance is wired per
// bucket (resumes, blog images) so services cannot mix them up.
type FileStore interface {
	// UploadFile stores the contents of r under the given filename and
	// returns the backend-assigned file ID.
	UploadFile(ctx context.Context, filename string, r io.Reader) (string, error)

	// DeleteFile removes a stored file.
	DeleteFile(ctx context.Context, fileID string) error

	// FileViewURL returns the public view URL for a stored file. This is
	// pure string templating; it never calls the backend.
	FileViewURL(fileID string) string
}
