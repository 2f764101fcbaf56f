package model

import "context"

// ObjectStorage writes immutable objects to a bucket.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}
