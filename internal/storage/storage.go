package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage writes rendered documents under keys that double as public paths
// (key "certificates/x.png" is served at "/certificates/x.png").

// ErrNotFound is returned by Get and Delete when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the file persistence used by the renderer service.
// Put must not return before the object is fully written.
type Storage interface {
	// Put stores the reader's content under key, creating parent directories as needed.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

// ImmutableCacheControl is sent with every stored document. Rendered files are never
// rewritten under the same key.
const ImmutableCacheControl = "public, max-age=31536000, immutable"

// PublicPath returns the URL path a key is served under.
func PublicPath(key string) string { return "/" + key }
