// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/domain"
	"github.com/docgraphhq/docgraph/internal/graph"
	"github.com/docgraphhq/docgraph/internal/models"
)

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// GraphService runs the query engine over a fixed edge source with
// context-aware logging.
type GraphService struct {
	source graph.EdgeSource
	log    *logrus.Logger
}

// NewGraphService creates a GraphService over the given edge source.
func NewGraphService(source graph.EdgeSource, log *logrus.Logger) *GraphService {
	return &GraphService{source: source, log: log}
}

// ForwardDeps returns everything the file transitively imports.
func (s *GraphService) ForwardDeps(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error) {
	s.log.WithFields(logrus.Fields{
		"file":      file,
		"max_depth": maxDepth,
	}).Debug("graph.forward")

	return graph.Traverse(ctx, s.source, file, models.DirectionForward, maxDepth)
}

// ReverseDeps returns everything that transitively imports the file.
func (s *GraphService) ReverseDeps(ctx context.Context, file string, maxDepth int) ([]models.TraversalResult, error) {
	s.log.WithFields(logrus.Fields{
		"file":      file,
		"max_depth": maxDepth,
	}).Debug("graph.reverse")

	return graph.Traverse(ctx, s.source, file, models.DirectionReverse, maxDepth)
}

// Related returns the combined neighborhood of the file.
func (s *GraphService) Related(ctx context.Context, file string, direction models.Direction, maxDepth int) ([]models.TraversalResult, error) {
	s.log.WithFields(logrus.Fields{
		"file":      file,
		"direction": direction,
		"max_depth": maxDepth,
	}).Debug("graph.related")

	return graph.FindRelated(ctx, s.source, file, direction, maxDepth)
}

// Adjacency returns the full forward adjacency view of the edge relation.
func (s *GraphService) Adjacency(ctx context.Context) (map[string][]string, error) {
	s.log.Debug("graph.adjacency")

	return graph.Materialize(ctx, s.source)
}

// EntryPoints returns files nothing depends on.
func (s *GraphService) EntryPoints(ctx context.Context) ([]string, error) {
	s.log.Debug("graph.entrypoints")

	return graph.EntryPoints(ctx, s.source)
}

// LeafNodes returns files that depend on nothing further.
func (s *GraphService) LeafNodes(ctx context.Context) ([]string, error) {
	s.log.Debug("graph.leaves")

	return graph.LeafNodes(ctx, s.source)
}
