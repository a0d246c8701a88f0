package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"time"
)

// ErrObjectNotFound wraps fs.ErrNotExist so callers can treat a missing
// object like a missing file.
var ErrObjectNotFound = fmt.Errorf("storage: object %w", fs.ErrNotExist)

// Storage is read access to an object store holding site content.
type Storage interface {
	io.Closer

	// GetObject opens an object. A missing object yields ErrObjectNotFound.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error)
	// ListObjects lists every object under prefix, at any depth.
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
}

// ObjectInfo describes object metadata.
type ObjectInfo struct {
	Bucket      string
	Key         string
	Size        int64
	ETag        string
	ContentType string
	UpdatedAt   time.Time
}

// ReadObject reads a whole object, refusing anything larger than limit bytes
// when limit is positive.
func ReadObject(ctx context.Context, s Storage, bucket, key string, limit int64) ([]byte, error) {
	rc, info, err := s.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if limit > 0 && info.Size > limit {
		return nil, fmt.Errorf("storage: object %s/%s is %d bytes, limit %d", bucket, key, info.Size, limit)
	}

	var r io.Reader = rc
	if limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("storage: object %s/%s exceeds limit %d", bucket, key, limit)
	}
	return data, nil
}
