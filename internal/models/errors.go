package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingFilePath    = errors.New("file_path is required")
	ErrMissingContentHash = errors.New("content_hash is required")
	ErrMissingTarget      = errors.New("to_file is required")
	ErrInvalidDirection   = errors.New("direction must be forward, reverse, or both")
	ErrInvalidDepth       = errors.New("max_depth must be at least 1")
)

// Sentinel errors for entity lookups.
var ErrDocumentNotFound = errors.New("document not found")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
