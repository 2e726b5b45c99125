// Package storage persists table snapshots to the local filesystem or S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("storage: key not found")

// BlobStore is a flat key/value store for snapshot blobs.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

// Open returns the store for location. "s3://bucket/prefix" selects S3 with
// the default AWS credential chain; anything else is a local directory.
func Open(ctx context.Context, location string) (BlobStore, error) {
	if !strings.HasPrefix(location, "s3://") {
		return NewLocalStore(location), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid s3 location %q: %w", location, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid s3 location %q: missing bucket", location)
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewS3Store(cfg, u.Host, strings.Trim(u.Path, "/")), nil
}
