package storage

import (
	"context"
	"errors"
	"io"
	"os"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCS reads objects from Google Cloud Storage.
type GCS struct {
	client *gcs.Client
}

// GCSOptions configures the GCS client. Without explicit credentials the
// application default credentials are used.
type GCSOptions struct {
	// CredentialsFile is a service account JSON key on disk.
	CredentialsFile string
	// CredentialsJSON is a service account JSON key; it wins over the file.
	CredentialsJSON []byte
	// Endpoint points at an emulator such as fake-gcs-server.
	Endpoint string
	// Anonymous disables authentication, for public buckets and emulators.
	Anonymous bool
}

// NewGCS builds a read-only client.
func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	keyJSON := opts.CredentialsJSON
	if len(keyJSON) == 0 && opts.CredentialsFile != "" {
		// #nosec G304 -- path is from trusted config file.
		raw, err := os.ReadFile(opts.CredentialsFile)
		if err != nil {
			return nil, err
		}
		keyJSON = raw
	}

	switch {
	case opts.Anonymous:
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	case len(keyJSON) > 0:
		creds, err := google.CredentialsFromJSON(ctx, keyJSON, gcs.ScopeReadOnly)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	}

	client, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}
	return &GCS{client: client}, nil
}

func (g *GCS) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	reader, err := g.client.Bucket(bucket).Object(key).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	return reader, ObjectInfo{
		Bucket:      bucket,
		Key:         key,
		Size:        reader.Attrs.Size,
		ContentType: reader.Attrs.ContentType,
		UpdatedAt:   reader.Attrs.LastModified,
	}, nil
}

func (g *GCS) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	it := g.client.Bucket(bucket).Objects(ctx, &gcs.Query{Prefix: prefix})

	var objects []ObjectInfo
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return objects, nil
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, ObjectInfo{
			Bucket:      attrs.Bucket,
			Key:         attrs.Name,
			Size:        attrs.Size,
			ETag:        attrs.Etag,
			ContentType: attrs.ContentType,
			UpdatedAt:   attrs.Updated,
		})
	}
}

func (g *GCS) Close() error {
	return g.client.Close()
}
