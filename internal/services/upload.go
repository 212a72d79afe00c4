package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"restaurant_dashboard/internal/storage"
)

const (
	MaxImageBytes = 5 * 1024 * 1024
	MaxMenuImages = 10
)

// File is a pending upload as declared by the client.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadedAsset is one stored object: its key and its public URL.
type UploadedAsset struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Rejection explains why a file was left out of a selection.
type Rejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ValidateImage checks the declared media type and size of f.
func ValidateImage(f File) error {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.ContentType)), "image/") {
		return invalid(f.Name, ErrNotImage, "the selected file %s is not an image", f.Name)
	}
	if f.Size > MaxImageBytes {
		return invalid(f.Name, ErrImageTooLarge, "image %s must not exceed 5MB", f.Name)
	}
	return nil
}

// AssetUploader pushes files into a bucket and resolves their public URLs.
type AssetUploader struct {
	store       storage.ObjectStore
	concurrency int
	now         func() time.Time
	log         logrus.FieldLogger
}

func NewAssetUploader(store storage.ObjectStore, concurrency int, log logrus.FieldLogger) *AssetUploader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AssetUploader{store: store, concurrency: concurrency, now: time.Now, log: log}
}

// Upload stores files in input order and returns their assets in the same
// order. The first failure stops the batch; the returned slice then holds
// only the assets that were stored before it, which are left orphaned.
func (u *AssetUploader) Upload(ctx context.Context, bucket string, files []File) ([]UploadedAsset, error) {
	if u.concurrency > 1 && len(files) > 1 {
		return u.uploadBounded(ctx, bucket, files)
	}

	assets := make([]UploadedAsset, 0, len(files))
	for _, f := range files {
		asset, err := u.uploadOne(ctx, bucket, f)
		if err != nil {
			return assets, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// uploadBounded runs at most u.concurrency uploads at once. A failure
// cancels the uploads still in flight and no ordered result is returned.
func (u *AssetUploader) uploadBounded(ctx context.Context, bucket string, files []File) ([]UploadedAsset, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)

	results := make([]UploadedAsset, len(files))
	stored := make([]bool, len(files))
	for i, f := range files {
		g.Go(func() error {
			asset, err := u.uploadOne(gctx, bucket, f)
			if err != nil {
				return err
			}
			results[i] = asset
			stored[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var orphans []UploadedAsset
		for i, ok := range stored {
			if ok {
				orphans = append(orphans, results[i])
			}
		}
		return orphans, err
	}
	return results, nil
}

func (u *AssetUploader) uploadOne(ctx context.Context, bucket string, f File) (UploadedAsset, error) {
	if err := ctx.Err(); err != nil {
		return UploadedAsset{}, fmt.Errorf("failed to upload %s: %w", f.Name, err)
	}

	key := storage.ObjectName(u.now(), f.Name)
	body, err := f.Open()
	if err != nil {
		return UploadedAsset{}, fmt.Errorf("failed to upload %s: %w", f.Name, err)
	}
	defer body.Close()

	if err := u.store.Upload(ctx, bucket, key, body, f.Size, f.ContentType); err != nil {
		return UploadedAsset{}, fmt.Errorf("failed to upload %s: %w", f.Name, err)
	}

	u.log.WithFields(logrus.Fields{"bucket": bucket, "key": key}).Debug("asset uploaded")
	return UploadedAsset{Key: key, URL: u.store.PublicURL(bucket, key)}, nil
}

// MenuSelection is the pending set of menu images for one restaurant.
type MenuSelection struct {
	files []File
	limit int
}

func NewMenuSelection() *MenuSelection {
	return &MenuSelection{limit: MaxMenuImages}
}

// Add appends the valid files. A batch that would push the selection past
// the limit is refused entirely; otherwise invalid files are skipped and
// reported as rejections.
func (s *MenuSelection) Add(files ...File) ([]Rejection, error) {
	if len(s.files)+len(files) > s.limit {
		return nil, invalid("images", ErrMenuImageLimit, "you can upload at most %d images", s.limit)
	}

	var rejected []Rejection
	for _, f := range files {
		if err := ValidateImage(f); err != nil {
			rejected = append(rejected, Rejection{Name: f.Name, Reason: err.(*ValidationError).Message})
			continue
		}
		s.files = append(s.files, f)
	}
	return rejected, nil
}

func (s *MenuSelection) Remove(index int) error {
	if index < 0 || index >= len(s.files) {
		return invalid("images", ErrIndexRange, "no image at index %d", index)
	}
	s.files = append(s.files[:index], s.files[index+1:]...)
	return nil
}

func (s *MenuSelection) Len() int { return len(s.files) }

func (s *MenuSelection) Files() []File {
	return append([]File(nil), s.files...)
}
