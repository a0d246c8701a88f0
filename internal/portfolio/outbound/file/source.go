package file

import (
	"context"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/shandysiswandi/folio/internal/pkg/storage"
)

// maxDocumentBytes caps a single content document read from a bucket.
const maxDocumentBytes = 1 << 20

// source is where content documents live. A missing document or directory
// reports fs.ErrNotExist.
type source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// ReadDir returns the names of regular documents directly inside dir.
	ReadDir(ctx context.Context, dir string) ([]string, error)
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}

func (s fsSource) ReadDir(_ context.Context, dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

type bucketSource struct {
	store  storage.Storage
	bucket string
	prefix string
}

func (s bucketSource) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s bucketSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return storage.ReadObject(ctx, s.store, s.bucket, s.key(name), maxDocumentBytes)
}

// ReadDir keeps only direct children; object stores list recursively.
func (s bucketSource) ReadDir(ctx context.Context, dir string) ([]string, error) {
	prefix := s.key(dir) + "/"
	objects, err := s.store.ListObjects(ctx, s.bucket, prefix)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(objects))
	for _, obj := range objects {
		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		names = append(names, name)
	}
	// ListObjects does not guarantee order.
	slices.Sort(names)
	return names, nil
}
