package graph

import (
	"context"
	"fmt"
	"sort"
)

// EntryPoints returns the files that appear as a source of at least one edge
// but never as a target: nothing depends on them, they are the roots of the
// dependency graph. Isolated files participate in no edge and are excluded.
// Results are sorted lexicographically for stable assertions.
func EntryPoints(ctx context.Context, src EdgeSource) ([]string, error) {
	sources, targets, err := endpointSets(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("finding entry points: %w", err)
	}

	return difference(sources, targets), nil
}

// LeafNodes returns the files that appear as a target of at least one edge
// but never as a source: they depend on nothing further, they are the
// terminals of the dependency graph. Sorted lexicographically.
func LeafNodes(ctx context.Context, src EdgeSource) ([]string, error) {
	sources, targets, err := endpointSets(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("finding leaf nodes: %w", err)
	}

	return difference(targets, sources), nil
}

// endpointSets scans the relation once and splits endpoints by role.
func endpointSets(ctx context.Context, src EdgeSource) (sources, targets map[string]bool, err error) {
	edges, err := src.Edges(ctx)
	if err != nil {
		return nil, nil, err
	}

	sources = make(map[string]bool)
	targets = make(map[string]bool)

	for _, e := range edges {
		sources[e.FromFile] = true
		targets[e.ToFile] = true
	}

	return sources, targets, nil
}

// difference returns the members of a absent from b, sorted.
func difference(a, b map[string]bool) []string {
	out := make([]string, 0, len(a))

	for f := range a {
		if !b[f] {
			out = append(out, f)
		}
	}

	sort.Strings(out)

	return out
}
