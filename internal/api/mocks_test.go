package api_test

import (
	"context"

	"github.com/docgraphhq/docgraph/internal/ingest"
	"github.com/docgraphhq/docgraph/internal/models"
)

// mockGraphRepo implements api.GraphRepository for testing.
type mockGraphRepo struct {
	forwardFn     func(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error)
	reverseFn     func(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error)
	relatedFn     func(ctx context.Context, file string, direction models.Direction, maxDepth int) ([]models.TraversalResult, error)
	adjacencyFn   func(ctx context.Context) (map[string][]string, error)
	entryPointsFn func(ctx context.Context) ([]string, error)
	leafNodesFn   func(ctx context.Context) ([]string, error)
}

func (m *mockGraphRepo) ForwardDeps(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error) {
	return m.forwardFn(ctx, file, maxDepth)
}

func (m *mockGraphRepo) ReverseDeps(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error) {
	return m.reverseFn(ctx, file, maxDepth)
}

func (m *mockGraphRepo) Related(ctx context.Context, file string, direction models.Direction, maxDepth int) ([]models.TraversalResult, error) {
	return m.relatedFn(ctx, file, direction, maxDepth)
}

func (m *mockGraphRepo) Adjacency(ctx context.Context) (map[string][]string, error) {
	return m.adjacencyFn(ctx)
}

func (m *mockGraphRepo) EntryPoints(ctx context.Context) ([]string, error) {
	return m.entryPointsFn(ctx)
}

func (m *mockGraphRepo) LeafNodes(ctx context.Context) ([]string, error) {
	return m.leafNodesFn(ctx)
}

// mockDocumentRepo implements api.DocumentRepository for testing.
type mockDocumentRepo struct {
	getFn      func(ctx context.Context, filePath string) (*models.Document, error)
	listFn     func(ctx context.Context, limit, offset int) ([]models.Document, bool, error)
	deleteFn   func(ctx context.Context, filePath string) error
	listDepsFn func(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error)
	statsFn    func(ctx context.Context) (*models.StatsResult, error)
}

func (m *mockDocumentRepo) GetDocument(ctx context.Context, filePath string) (*models.Document, error) {
	return m.getFn(ctx, filePath)
}

func (m *mockDocumentRepo) ListDocuments(ctx context.Context, limit, offset int) ([]models.Document, bool, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockDocumentRepo) DeleteDocument(ctx context.Context, filePath string) error {
	return m.deleteFn(ctx, filePath)
}

func (m *mockDocumentRepo) ListDependencies(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error) {
	return m.listDepsFn(ctx, fromFile, toFile, limit, offset)
}

func (m *mockDocumentRepo) Stats(ctx context.Context) (*models.StatsResult, error) {
	return m.statsFn(ctx)
}

// mockIngestRepo implements api.IngestRepository for testing.
type mockIngestRepo struct {
	scanFn func(ctx context.Context, root string) (*ingest.Result, error)
}

func (m *mockIngestRepo) Scan(ctx context.Context, root string) (*ingest.Result, error) {
	return m.scanFn(ctx, root)
}
