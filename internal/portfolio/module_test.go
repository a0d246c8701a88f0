package portfolio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/folio/internal/pkg/config"
	"github.com/shandysiswandi/folio/internal/pkg/instrument"
	"github.com/shandysiswandi/folio/internal/pkg/router"
	"github.com/shandysiswandi/folio/internal/pkg/storage"
	"github.com/shandysiswandi/folio/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bucket map[string]string

func (b bucket) GetObject(_ context.Context, _, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	v, ok := b[key]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrObjectNotFound
	}
	return io.NopCloser(strings.NewReader(v)), storage.ObjectInfo{Key: key, Size: int64(len(v))}, nil
}

func (bucket) ListObjects(context.Context, string, string) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (bucket) Close() error { return nil }

func newDependency(t *testing.T, yaml string) Dependency {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)
	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	return Dependency{
		Router:     router.NewRouter(router.Config{Config: cfg, Instrument: instrument.NewNoop()}),
		Config:     cfg,
		Instrument: instrument.NewNoop(),
		Validator:  v,
	}
}

func TestNew(t *testing.T) {
	t.Run("bucket source without storage", func(t *testing.T) {
		dep := newDependency(t, "modules:\n  portfolio:\n    source: bucket\n")

		_, err := New(dep)

		assert.ErrorIs(t, err, ErrStorageRequired)
	})

	t.Run("missing dependency", func(t *testing.T) {
		dep := newDependency(t, "modules: {}")
		dep.Router = nil

		_, err := New(dep)

		assert.Error(t, err)
	})

	t.Run("bucket source serves profile", func(t *testing.T) {
		// Arrange
		dep := newDependency(t, "modules:\n  portfolio:\n    source: bucket\n    bucket:\n      name: content\n      prefix: site\n")
		dep.Storage = bucket{"site/profile.json": `{"name":"Ada","email":"ada@folio.dev"}`}

		// Act
		mod, err := New(dep)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		dep.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/profile", nil))

		// Assert
		assert.Equal(t, "ada@folio.dev", mod.ContactEmail(context.Background()))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"ada@folio.dev"`)
	})
}
