package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO reads objects from a MinIO server.
type MinIO struct {
	client *minio.Client
}

// MinIOOptions configures the MinIO client.
type MinIOOptions struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	UseSSL       bool
}

// NewMinIO builds the client; no connection is made until the first call.
func NewMinIO(opts MinIOOptions) (*MinIO, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, err
	}
	return NewMinIOWithClient(client), nil
}

// NewMinIOWithClient wraps an existing client.
func NewMinIOWithClient(client *minio.Client) *MinIO {
	return &MinIO{client: client}
}

func (m *MinIO) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, minioErr(err)
	}

	// GetObject is lazy; Stat performs the request.
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, ObjectInfo{}, minioErr(err)
	}

	return obj, ObjectInfo{
		Bucket:      bucket,
		Key:         key,
		Size:        stat.Size,
		ETag:        stat.ETag,
		ContentType: stat.ContentType,
		UpdatedAt:   stat.LastModified,
	}, nil
}

func (m *MinIO) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	for object := range m.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, object.Err
		}
		objects = append(objects, ObjectInfo{
			Bucket:    bucket,
			Key:       object.Key,
			Size:      object.Size,
			ETag:      object.ETag,
			UpdatedAt: object.LastModified,
		})
	}
	return objects, nil
}

// Close is a no-op; the client uses a shared HTTP transport.
func (*MinIO) Close() error { return nil }

func minioErr(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return err
}
