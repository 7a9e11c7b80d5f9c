package gcs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/m-mizutani/apkdrop/pkg/domain/interfaces"
	"github.com/m-mizutani/apkdrop/pkg/domain/types"
)

type client struct {
	bucket    string
	gcsClient *storage.Client
}

// NewClient creates a Google Cloud Storage backed StorageClient
// writing into the given bucket. Remote paths of the form
// "/{folder}/{file}" map to object names without the leading slash.
func NewClient(ctx context.Context, bucket string, opts ...option.ClientOption) (interfaces.StorageClient, error) {
	gcsClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GCS client",
			goerr.T(types.TagStorage), goerr.V("bucket", bucket))
	}

	return &client{
		bucket:    bucket,
		gcsClient: gcsClient,
	}, nil
}

// objectName converts a provider-side path into a GCS object name
func (c *client) objectName(remotePath string) string {
	return strings.TrimPrefix(remotePath, "/")
}

// Delete removes the object at remotePath
func (c *client) Delete(ctx context.Context, remotePath string) error {
	obj := c.gcsClient.Bucket(c.bucket).Object(c.objectName(remotePath))

	if err := obj.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete object",
			goerr.T(types.TagStorage), goerr.V("path", remotePath))
	}

	return nil
}

// Upload writes content to the object at remotePath, replacing any
// existing object
func (c *client) Upload(ctx context.Context, remotePath string, content io.Reader) error {
	obj := c.gcsClient.Bucket(c.bucket).Object(c.objectName(remotePath))

	w := obj.NewWriter(ctx)
	if _, err := io.Copy(w, content); err != nil {
		// Close to release the writer, the copy error is the one to report
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object",
			goerr.T(types.TagStorage), goerr.V("path", remotePath))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object",
			goerr.T(types.TagStorage), goerr.V("path", remotePath))
	}

	return nil
}

// CreateSharedLink grants public read access to the object and returns
// its canonical URL, which already serves raw bytes
func (c *client) CreateSharedLink(ctx context.Context, remotePath string) (string, error) {
	name := c.objectName(remotePath)
	obj := c.gcsClient.Bucket(c.bucket).Object(name)

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", goerr.Wrap(err, "failed to set public read access",
			goerr.T(types.TagStorage), goerr.V("path", remotePath))
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, name), nil
}
