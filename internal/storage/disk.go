package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DiskStore keeps each bucket as a directory under Root. The HTTP server
// serves Root so that PublicURL resolves.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, publicBaseURL string) (*DiskStore, error) {
	for _, bucket := range Buckets() {
		if err := os.MkdirAll(filepath.Join(root, bucket), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create bucket folder %s: %w", bucket, err)
		}
	}
	return &DiskStore{root: root, baseURL: publicBaseURL}, nil
}

func (s *DiskStore) Root() string { return s.root }

func (s *DiskStore) Upload(ctx context.Context, bucket, key string, body io.Reader, _ int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.objectPath(bucket, key)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s/%s", ErrObjectExists, bucket, key)
		}
		return fmt.Errorf("failed to create %s/%s: %w", bucket, key, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(p)
		return fmt.Errorf("failed to write %s/%s: %w", bucket, key, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(p)
		return fmt.Errorf("failed to close %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Remove deletes every key and reports the missing or failed ones together.
func (s *DiskStore) Remove(ctx context.Context, bucket string, keys ...string) error {
	var errs []error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := s.objectPath(bucket, key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Remove(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key))
				continue
			}
			errs = append(errs, fmt.Errorf("failed to remove %s/%s: %w", bucket, key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *DiskStore) PublicURL(bucket, key string) string {
	return JoinPublicURL(s.baseURL, bucket, key)
}

func (s *DiskStore) objectPath(bucket, key string) (string, error) {
	if err := checkBucket(bucket); err != nil {
		return "", err
	}
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, bucket, key), nil
}
