// Package storage archives canonical extraction results as JSON artifacts,
// either on the local filesystem or in S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Storage persists and retrieves extraction artifacts by key
type Storage interface {
	// Save stores one artifact and returns its storage key
	Save(ctx context.Context, id uuid.UUID, data io.Reader) (string, error)

	// Load retrieves an artifact by storage key
	Load(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an artifact by storage key
	Delete(ctx context.Context, key string) error
}

// Type represents the storage backend type
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds configuration for the artifact archive
type Config struct {
	Type         Type
	LocalPath    string // for local storage
	S3Bucket     string // for S3 storage
	S3Region     string // for S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a storage instance based on configuration
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal:
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./storage/artifacts"
		}
		return NewLocalStorage(cfg.LocalPath)
	case TypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 bucket is required for s3 storage")
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// artifactKey builds a date-partitioned key so listings stay browsable as
// the archive grows
func artifactKey(id uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s/%s.json", now.UTC().Format("2006/01/02"), id.String())
}
