package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the narrow blob-store contract the upload pipeline consumes.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}
