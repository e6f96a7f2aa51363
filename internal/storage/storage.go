// Package storage persists uploaded images behind a backend-agnostic
// interface. Files are keyed by a freshly generated unique name, so
// concurrent uploads never collide.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
)

// ErrDisallowedType indicates the upload's content type is not an accepted
// image format.
var ErrDisallowedType = errors.New("file type not allowed")

// allowedTypes maps accepted MIME types to a canonical file extension.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// Storage saves uploaded files and returns their public URL.
type Storage interface {
	// Save stores the content under a fresh unique filename and returns
	// the public URL and the generated filename.
	Save(ctx context.Context, originalName, contentType string, content io.Reader) (url, filename string, err error)
}

// IsAllowedType reports whether the MIME type is an accepted image format.
func IsAllowedType(contentType string) bool {
	_, ok := allowedTypes[contentType]
	return ok
}

// uniqueFilename derives a fresh object name, keeping the original
// extension when present and defaulting to jpg otherwise.
func uniqueFilename(originalName string) string {
	ext := "jpg"
	if idx := strings.LastIndex(originalName, "."); idx >= 0 && idx < len(originalName)-1 {
		ext = strings.ToLower(originalName[idx+1:])
	}
	return uuid.NewString() + "." + ext
}
