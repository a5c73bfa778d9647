package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalArchive implements Archive on the local filesystem
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates a local archive rooted at basePath
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalArchive{basePath: basePath}, nil
}

// Put stores a rendered PDF on disk
func (a *LocalArchive) Put(ctx context.Context, key uuid.UUID, filename string, data io.Reader) (string, error) {
	path := archivePath(key, filename)
	fullPath := filepath.Join(a.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Get retrieves an archived PDF from disk
func (a *LocalArchive) Get(ctx context.Context, key uuid.UUID, filename string) (io.ReadCloser, error) {
	fullPath := filepath.Join(a.basePath, archivePath(key, filename))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("archived file not found: %s", filename)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes an archived PDF from disk
func (a *LocalArchive) Delete(ctx context.Context, key uuid.UUID, filename string) error {
	fullPath := filepath.Join(a.basePath, archivePath(key, filename))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
