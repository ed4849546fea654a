// Package storage exposes the media library the image pickers browse.
// The library is an S3-compatible bucket; pickers only read from it.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Stat when the key does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
}

// MediaLibrary is a read-only view of an S3-compatible bucket of images.
type MediaLibrary interface {
	// List returns the objects whose keys start with prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	// Stat returns an object's info, or ErrNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
