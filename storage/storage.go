// Package storage keeps archive copies of generated PDFs outside the
// database. The blob of record lives in the pdfs table; the archive is a
// best-effort secondary copy on the local filesystem or in S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Archive stores and retrieves archived PDF copies by archive key
type Archive interface {
	// Put stores a rendered PDF under key and returns the archive path
	Put(ctx context.Context, key uuid.UUID, filename string, data io.Reader) (string, error)

	// Get retrieves an archived PDF by key and filename
	Get(ctx context.Context, key uuid.UUID, filename string) (io.ReadCloser, error)

	// Delete removes an archived PDF
	Delete(ctx context.Context, key uuid.UUID, filename string) error
}

// ArchiveType represents the archive backend type
type ArchiveType string

const (
	ArchiveTypeLocal ArchiveType = "local"
	ArchiveTypeS3    ArchiveType = "s3"
)

// ArchiveConfig holds configuration for the archive backend
type ArchiveConfig struct {
	Type         ArchiveType
	LocalPath    string // For local archive
	S3Bucket     string // For S3 archive
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// NewArchiveFromEnv creates an archive backend from environment variables
func NewArchiveFromEnv() (Archive, error) {
	archiveType := os.Getenv("STORAGE_TYPE")
	if archiveType == "" {
		archiveType = "local" // Default to local for development
	}

	switch ArchiveType(archiveType) {
	case ArchiveTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./data/archive"
		}
		return NewLocalArchive(localPath)

	case ArchiveTypeS3:
		cfg := ArchiveConfig{
			Type:         ArchiveTypeS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Archive(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", archiveType)
	}
}

// archivePath builds the object path for an archived PDF. Keys are uuids, so
// the leading two characters fan entries out across prefixes.
func archivePath(key uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s_%s", key.String()[:2], key.String(), filename)
}
