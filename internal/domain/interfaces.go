// Package domain defines the canonical service interfaces shared across API
// layers (REST handlers, client, CLI wiring). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/docgraphhq/docgraph/internal/ingest"
	"github.com/docgraphhq/docgraph/internal/models"
)

// GraphService defines the dependency-graph query operations.
type GraphService interface {
	ForwardDeps(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error)
	ReverseDeps(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error)
	Related(ctx context.Context, file string, direction models.Direction, maxDepth int) ([]models.TraversalResult, error)
	Adjacency(ctx context.Context) (map[string][]string, error)
	EntryPoints(ctx context.Context) ([]string, error)
	LeafNodes(ctx context.Context) ([]string, error)
}

// DocumentService defines document catalog operations.
type DocumentService interface {
	GetDocument(ctx context.Context, filePath string) (*models.Document, error)
	ListDocuments(ctx context.Context, limit, offset int) ([]models.Document, bool, error)
	DeleteDocument(ctx context.Context, filePath string) error
	ListDependencies(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error)
	Stats(ctx context.Context) (*models.StatsResult, error)
}

// IngestService defines corpus indexing operations.
type IngestService interface {
	Scan(ctx context.Context, root string) (*ingest.Result, error)
}
