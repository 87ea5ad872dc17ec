package appwrite

import (
	"context"
	"io"

	"github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
)

type bucketFiles struct {
	storage  *Storage
	bucketID string
}

// NewBucketFiles creates a FileStore bound to a single bucket. Wire one per
// bucket so services cannot cross resumes and blog images.
func NewBucketFiles(storage *Storage, bucketID string) repositories.FileStore {
	return &bucketFiles{storage: storage, bucketID: bucketID}
}

func (b *bucketFiles) UploadFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	file, err := b.storage.CreateFile(ctx, b.bucketID, filename, r)
	if err != nil {
		return "", err
	}
	return file.ID, nil
}

func (b *bucketFiles) DeleteFile(ctx context.Context, fileID string) error {
	return b.storage.DeleteFile(ctx, b.bucketID, fileID)
}

func (b *bucketFiles) FileViewURL(fileID string) string {
	return b.storage.FileViewURL(b.bucketID, fileID)
}
