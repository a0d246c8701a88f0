package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage map[string]string

func (m memStorage) GetObject(_ context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	v, ok := m[key]
	if !ok {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	return io.NopCloser(strings.NewReader(v)), ObjectInfo{Bucket: bucket, Key: key, Size: int64(len(v))}, nil
}

func (m memStorage) ListObjects(context.Context, string, string) ([]ObjectInfo, error) {
	return nil, nil
}

func (memStorage) Close() error { return nil }

func TestReadObject(t *testing.T) {
	store := memStorage{"profile.json": `{"name":"Ada"}`}

	t.Run("reads whole object", func(t *testing.T) {
		got, err := ReadObject(context.Background(), store, "site", "profile.json", 0)

		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ada"}`, string(got))
	})

	t.Run("missing is fs.ErrNotExist", func(t *testing.T) {
		_, err := ReadObject(context.Background(), store, "site", "nope.json", 0)

		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := ReadObject(context.Background(), store, "site", "profile.json", 4)

		assert.Error(t, err)
	})
}

func TestNewFromDriver_Unknown(t *testing.T) {
	_, err := NewFromDriver(context.Background(), "ftp", FactoryOptions{})

	assert.ErrorIs(t, err, ErrUnknownDriver)
}
