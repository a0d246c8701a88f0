package storage

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3 reads objects from AWS S3 or an S3-compatible service.
type S3 struct {
	client *s3.Client
}

// S3Options configures the S3 client. Empty credentials fall back to the
// default AWS credential chain.
type S3Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
	UsePathStyle bool
}

// NewS3 loads AWS configuration and builds the client.
func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	var loadOpts []func(*config.LoadOptions) error
	switch {
	case opts.Region != "":
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	case opts.Endpoint != "":
		// custom endpoints still need a signing region
		loadOpts = append(loadOpts, config.WithRegion("us-east-1"))
	}
	if opts.AccessKey != "" || opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, opts.SessionToken),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return NewS3WithClient(s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = opts.UsePathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})), nil
}

// NewS3WithClient wraps an existing client.
func NewS3WithClient(client *s3.Client) *S3 {
	return &S3{client: client}
}

func (s *S3) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}

	return out.Body, ObjectInfo{
		Bucket:      bucket,
		Key:         key,
		Size:        aws.ToInt64(out.ContentLength),
		ETag:        aws.ToString(out.ETag),
		ContentType: aws.ToString(out.ContentType),
		UpdatedAt:   aws.ToTime(out.LastModified),
	}, nil
}

func (s *S3) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	pager := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	var objects []ObjectInfo
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			objects = append(objects, ObjectInfo{
				Bucket:    bucket,
				Key:       aws.ToString(obj.Key),
				Size:      aws.ToInt64(obj.Size),
				ETag:      aws.ToString(obj.ETag),
				UpdatedAt: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

// Close is a no-op; the SDK client holds no connections to release.
func (*S3) Close() error { return nil }
