package interfaces

import (
	"context"
	"io"
)

// StorageClient defines operations against a cloud file-storage
// provider. Paths are provider-side absolute paths of the form
// "/{folder}/{file}".
type StorageClient interface {
	// Delete removes the file at the given remote path. Callers may
	// treat the outcome as best-effort cleanup before an upload.
	Delete(ctx context.Context, remotePath string) error

	// Upload streams the file content to the given remote path,
	// overwriting any existing file.
	Upload(ctx context.Context, remotePath string, content io.Reader) error

	// CreateSharedLink makes the file at the given remote path
	// publicly accessible and returns a direct-download URL.
	CreateSharedLink(ctx context.Context, remotePath string) (string, error)
}
