package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/domain"
	"github.com/docgraphhq/docgraph/internal/ingest"
	"github.com/docgraphhq/docgraph/internal/models"
)

// DocumentWriter is the document write access ingestion depends on.
type DocumentWriter interface {
	GetDocument(ctx context.Context, filePath string) (*models.Document, error)
	UpsertDocument(ctx context.Context, req models.UpsertDocumentRequest) (*models.Document, error)
}

// DependencyWriter is the edge write access ingestion depends on.
type DependencyWriter interface {
	ReplaceForFile(ctx context.Context, fromFile string, deps []models.DependencyInput) error
}

// Compile-time check: *IngestService must satisfy domain.IngestService.
var _ domain.IngestService = (*IngestService)(nil)

// IngestService runs corpus scans against the document and dependency stores.
type IngestService struct {
	docs    DocumentWriter
	deps    DependencyWriter
	workers int
	log     *logrus.Logger
}

// NewIngestService creates an IngestService with the given worker bound.
func NewIngestService(docs DocumentWriter, deps DependencyWriter, workers int, log *logrus.Logger) *IngestService {
	return &IngestService{docs: docs, deps: deps, workers: workers, log: log}
}

// Scan indexes every markdown file under root.
func (s *IngestService) Scan(ctx context.Context, root string) (*ingest.Result, error) {
	s.log.WithField("root", root).Info("ingest.scan")

	scanner := &ingest.Scanner{
		Root:    root,
		Workers: s.workers,
		Log:     s.log,
		Sink:    &storeSink{docs: s.docs, deps: s.deps},
	}

	return scanner.Run(ctx)
}

// storeSink adapts the stores to ingest.Sink.
type storeSink struct {
	docs DocumentWriter
	deps DependencyWriter
}

func (s *storeSink) ExistingHash(ctx context.Context, filePath string) (string, error) {
	doc, err := s.docs.GetDocument(ctx, filePath)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			return "", nil
		}

		return "", err
	}

	return doc.ContentHash, nil
}

func (s *storeSink) UpsertDocument(ctx context.Context, req models.UpsertDocumentRequest) error {
	_, err := s.docs.UpsertDocument(ctx, req)

	return err
}

func (s *storeSink) ReplaceDependencies(ctx context.Context, fromFile string, deps []models.DependencyInput) error {
	return s.deps.ReplaceForFile(ctx, fromFile, deps)
}
