package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes uploads to a directory on disk, served as static
// files by the HTTP layer.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates a LocalStorage rooted at dir, creating it if
// needed. baseURL is the public prefix under which the directory is served.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

// Save writes the content to disk under a unique filename.
func (s *LocalStorage) Save(ctx context.Context, originalName, contentType string, content io.Reader) (string, string, error) {
	if !IsAllowedType(contentType) {
		return "", "", ErrDisallowedType
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	filename := uniqueFilename(originalName)
	path := filepath.Join(s.dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return "", "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("close upload file: %w", err)
	}

	return s.baseURL + "/" + filename, filename, nil
}
