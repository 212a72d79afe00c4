package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store talks to any S3-compatible object store.
type S3Store struct {
	client  *minio.Client
	baseURL string
	region  string
}

type S3Options struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Region        string
	UseSSL        bool
	PublicBaseURL string
}

func NewS3Store(opts S3Options) (*S3Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	return &S3Store{client: client, baseURL: opts.PublicBaseURL, region: opts.Region}, nil
}

// EnsureBuckets creates any missing bucket.
func (s *S3Store) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range Buckets() {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}
	return nil
}

func (s *S3Store) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	if err := checkBucket(bucket); err != nil {
		return err
	}
	if err := ValidateKey(key); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *S3Store) Remove(ctx context.Context, bucket string, keys ...string) error {
	if err := checkBucket(bucket); err != nil {
		return err
	}
	var errs []error
	for _, key := range keys {
		if err := ValidateKey(key); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s/%s: %w", bucket, key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *S3Store) PublicURL(bucket, key string) string {
	return JoinPublicURL(s.baseURL, bucket, key)
}
