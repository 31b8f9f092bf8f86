package graph

import (
	"context"
	"fmt"
)

// Materialize reconstructs the full forward adjacency view of the edge
// relation in a single scan, for algorithms that need random access rather
// than a store query per node. Parallel edges are not deduplicated: the
// adjacency list mirrors the relation's cardinality exactly, and target order
// follows the source's scan order. Callers needing a simple graph must dedupe.
func Materialize(ctx context.Context, src EdgeSource) (map[string][]string, error) {
	edges, err := src.Edges(ctx)
	if err != nil {
		return nil, fmt.Errorf("materializing adjacency: %w", err)
	}

	adjacency := make(map[string][]string)
	for _, e := range edges {
		adjacency[e.FromFile] = append(adjacency[e.FromFile], e.ToFile)
	}

	return adjacency, nil
}
