package storage

import "context"

// StorageService abstracts the file-storage collaborator (Cloudinary in
// production).
type StorageService interface {
	// UploadFile pushes a local file into the given folder and returns the
	// public URL of the stored asset.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored asset by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}
