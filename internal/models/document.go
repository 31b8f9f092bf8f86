package models

import "time"

// Document is an indexed file in the corpus, keyed by its root-relative path.
type Document struct {
	FilePath    string         `json:"file_path"`
	Title       string         `json:"title"`
	ContentHash string         `json:"content_hash"`
	Frontmatter map[string]any `json:"frontmatter"`
	IndexedAt   time.Time      `json:"indexed_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// UpsertDocumentRequest is the payload for inserting or refreshing a document.
type UpsertDocumentRequest struct {
	FilePath    string         `json:"file_path"`
	Title       string         `json:"title,omitempty"`
	ContentHash string         `json:"content_hash"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
}

// Validate checks that required fields are present and within limits.
func (r *UpsertDocumentRequest) Validate() error {
	if r.FilePath == "" {
		return ErrMissingFilePath
	}

	if len(r.FilePath) > 1024 {
		return ErrFieldTooLong("file_path", 1024)
	}

	if r.ContentHash == "" {
		return ErrMissingContentHash
	}

	if len(r.Title) > 512 {
		return ErrFieldTooLong("title", 512)
	}

	return nil
}
