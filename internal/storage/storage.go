// Package storage is the upload backend port: files go either to local
// disk or to S3, selected by configuration. Callers validate type and size
// before handing the stream over.
package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage stores an uploaded file stream and returns the public URL it
// will be served from.
type Storage interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}

// ValidateFileSize rejects files above maxSize.
func ValidateFileSize(size int64, maxSize int64) error {
	if size > maxSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxSize)
	}
	return nil
}

// ValidateContentType rejects content types outside the allow-list.
func ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
