package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/docgraphhq/docgraph/internal/models"
)

// documentColumns lists the columns selected for document queries.
const documentColumns = `file_path, title, content_hash, frontmatter, indexed_at, updated_at`

// DocumentStore provides document read/write operations. Writes are performed
// by the ingestion pipeline; the query engine only reads.
type DocumentStore struct {
	Base
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(base Base) *DocumentStore {
	return &DocumentStore{Base: base}
}

// UpsertDocument inserts a document or refreshes it in place, returning the
// stored record. updated_at only advances when the content hash changes.
func (s *DocumentStore) UpsertDocument(ctx context.Context, req models.UpsertDocumentRequest) (*models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	frontmatter := req.Frontmatter
	if frontmatter == nil {
		frontmatter = map[string]any{}
	}

	fmJSON, err := json.Marshal(frontmatter)
	if err != nil {
		return nil, fmt.Errorf("marshalling frontmatter: %w", err)
	}

	query := `INSERT INTO documents (file_path, title, content_hash, frontmatter)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (file_path) DO UPDATE SET
			title = EXCLUDED.title,
			content_hash = EXCLUDED.content_hash,
			frontmatter = EXCLUDED.frontmatter,
			updated_at = CASE
				WHEN documents.content_hash IS DISTINCT FROM EXCLUDED.content_hash THEN now()
				ELSE documents.updated_at
			END
		RETURNING ` + documentColumns

	row := s.Pool.QueryRow(ctx, query, req.FilePath, req.Title, req.ContentHash, fmJSON)

	doc, err := scanDocument(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("scanning upserted document: %w", err)
	}

	s.notify("documents", "upsert", 1)

	return doc, nil
}

// GetDocument returns a document by its file path.
func (s *DocumentStore) GetDocument(ctx context.Context, filePath string) (*models.Document, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE file_path = $1`, filePath)

	doc, err := scanDocument(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDocumentNotFound
		}

		return nil, fmt.Errorf("scanning document: %w", err)
	}

	return doc, nil
}

// ListDocuments returns documents ordered by file path, with a hasMore flag
// for pagination.
func (s *DocumentStore) ListDocuments(ctx context.Context, limit, offset int) ([]models.Document, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	limit = clampLimit(limit, 100)

	// Fetch one extra row to detect whether more pages exist.
	rows, err := s.Pool.Query(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY file_path LIMIT $1 OFFSET $2`,
		limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, limit)

	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning document row: %w", err)
		}

		docs = append(docs, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating document rows: %w", err)
	}

	hasMore := len(docs) > limit
	if hasMore {
		docs = docs[:limit]
	}

	return docs, hasMore, nil
}

// DeleteDocument removes a document and every edge that touches it.
func (s *DocumentStore) DeleteDocument(ctx context.Context, filePath string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if _, err := tx.Exec(ctx,
		`DELETE FROM dependencies WHERE from_file = $1 OR to_file = $1`, filePath); err != nil {
		return fmt.Errorf("deleting document edges: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM documents WHERE file_path = $1`, filePath)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrDocumentNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing document delete: %w", err)
	}

	s.notify("documents", "delete", 1)

	return nil
}

// scanDocument scans a single row into a models.Document.
func scanDocument(scan func(dest ...any) error) (*models.Document, error) {
	var d models.Document
	var frontmatter []byte

	err := scan(
		&d.FilePath,
		&d.Title,
		&d.ContentHash,
		&frontmatter,
		&d.IndexedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(frontmatter, &d.Frontmatter); err != nil {
		return nil, fmt.Errorf("unmarshalling frontmatter: %w", err)
	}

	return &d, nil
}
