// Package storage holds the object stores restaurant assets are uploaded to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	LogoBucket = "restaurant-logos"
	MenuBucket = "restaurant-menus"
)

var (
	ErrObjectExists   = errors.New("object already exists")
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidKey     = errors.New("invalid object key")
	ErrUnknownBucket  = errors.New("unknown bucket")
)

// ObjectStore is a bucketed store whose objects are publicly readable by URL.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, bucket string, keys ...string) error
	PublicURL(bucket, key string) string
}

// Buckets lists every bucket the dashboard writes to.
func Buckets() []string {
	return []string{LogoBucket, MenuBucket}
}

func checkBucket(bucket string) error {
	for _, b := range Buckets() {
		if b == bucket {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
}

// ObjectName builds "<unix-millis>-<name>". Path separators are stripped from
// name so the key is always the final segment of its public URL.
func ObjectName(now time.Time, name string) string {
	base := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(strings.TrimSpace(name))
	if base == "" || base == "." || base == ".." {
		base = "file"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

// ValidateKey rejects keys that would escape a bucket or contain separators.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, "/\\") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// JoinPublicURL appends bucket and escaped key to base.
func JoinPublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + url.PathEscape(key)
}

// KeyFromURL returns the final path segment of a public URL. It is only the
// fallback for rows stored without a separate key.
func KeyFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.EscapedPath()
	}
	seg := path.Base(p)
	if seg == "/" || seg == "." {
		return ""
	}
	if unescaped, err := url.PathUnescape(seg); err == nil {
		return unescaped
	}
	return seg
}
