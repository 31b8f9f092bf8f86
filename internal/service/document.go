package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/domain"
	"github.com/docgraphhq/docgraph/internal/models"
)

// DocumentReader is the document data access DocumentService depends on.
// CountIndex reads both totals from one snapshot so the pair is consistent.
type DocumentReader interface {
	GetDocument(ctx context.Context, filePath string) (*models.Document, error)
	ListDocuments(ctx context.Context, limit, offset int) ([]models.Document, bool, error)
	DeleteDocument(ctx context.Context, filePath string) error
	CountIndex(ctx context.Context) (documents, dependencies int, err error)
}

// DependencyReader is the edge data access DocumentService depends on.
type DependencyReader interface {
	ListDependencies(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error)
}

// Compile-time check: *DocumentService must satisfy domain.DocumentService.
var _ domain.DocumentService = (*DocumentService)(nil)

// DocumentService wraps the document and dependency stores with logging.
type DocumentService struct {
	docs DocumentReader
	deps DependencyReader
	log  *logrus.Logger
}

// NewDocumentService creates a DocumentService.
func NewDocumentService(docs DocumentReader, deps DependencyReader, log *logrus.Logger) *DocumentService {
	return &DocumentService{docs: docs, deps: deps, log: log}
}

// GetDocument returns a document by file path.
func (s *DocumentService) GetDocument(ctx context.Context, filePath string) (*models.Document, error) {
	s.log.WithField("file", filePath).Debug("documents.get")

	return s.docs.GetDocument(ctx, filePath)
}

// ListDocuments returns a page of documents ordered by file path.
func (s *DocumentService) ListDocuments(ctx context.Context, limit, offset int) ([]models.Document, bool, error) {
	s.log.WithFields(logrus.Fields{
		"limit":  limit,
		"offset": offset,
	}).Debug("documents.list")

	return s.docs.ListDocuments(ctx, limit, offset)
}

// DeleteDocument removes a document and all edges touching it.
func (s *DocumentService) DeleteDocument(ctx context.Context, filePath string) error {
	s.log.WithField("file", filePath).Info("documents.delete")

	return s.docs.DeleteDocument(ctx, filePath)
}

// ListDependencies returns a page of edges, optionally filtered by endpoint.
func (s *DocumentService) ListDependencies(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error) {
	s.log.WithFields(logrus.Fields{
		"from":   fromFile,
		"to":     toFile,
		"limit":  limit,
		"offset": offset,
	}).Debug("dependencies.list")

	return s.deps.ListDependencies(ctx, fromFile, toFile, limit, offset)
}

// Stats returns index size counters, both read from one snapshot.
func (s *DocumentService) Stats(ctx context.Context) (*models.StatsResult, error) {
	docs, deps, err := s.docs.CountIndex(ctx)
	if err != nil {
		return nil, err
	}

	return &models.StatsResult{Documents: docs, Dependencies: deps}, nil
}
