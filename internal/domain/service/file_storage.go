package service

import (
	"context"
	"io"
)

// FileStorage is the port to the blob store holding user-uploaded files such
// as profile pictures.
type FileStorage interface {
	// Upload writes the content under the given key and returns the public URL.
	Upload(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Delete removes a previously uploaded file by its URL. Deleting a file
	// that no longer exists is not an error.
	Delete(ctx context.Context, url string) error
}
