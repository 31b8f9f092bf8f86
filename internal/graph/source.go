// Package graph implements the dependency-graph query engine: depth-bounded
// breadth-first traversal with path-sensitive cycle avoidance, neighborhood
// composition, full adjacency materialization, and boundary detection.
//
// Every operation takes its EdgeSource as an explicit parameter and holds no
// state across calls, so independent graphs can coexist in one process and the
// engine stays testable against an in-memory source.
package graph

import (
	"context"
	"sort"

	"github.com/docgraphhq/docgraph/internal/models"
)

// EdgeSource is read-only access to the dependency relation. The Postgres
// store and MemorySource both satisfy it.
type EdgeSource interface {
	// Outgoing returns the distinct targets of edges whose source is in files,
	// grouped by source. Files with no outgoing edges are absent from the map.
	Outgoing(ctx context.Context, files []string) (map[string][]string, error)

	// Incoming returns the distinct sources of edges whose target is in files,
	// grouped by target. Files with no incoming edges are absent from the map.
	Incoming(ctx context.Context, files []string) (map[string][]string, error)

	// Edges returns the entire edge relation, parallel edges included.
	Edges(ctx context.Context) ([]models.Dependency, error)
}

// MemorySource is an in-memory EdgeSource over a fixed edge list. Edge order
// is insertion order. Useful for tests and for running the engine over an
// already-materialized graph.
type MemorySource struct {
	edges []models.Dependency
}

// NewMemorySource creates a MemorySource holding the given edges.
func NewMemorySource(edges []models.Dependency) *MemorySource {
	return &MemorySource{edges: edges}
}

// Add appends an edge.
func (m *MemorySource) Add(from, to, importType string) {
	m.edges = append(m.edges, models.Dependency{FromFile: from, ToFile: to, ImportType: importType})
}

// Outgoing implements EdgeSource.
func (m *MemorySource) Outgoing(_ context.Context, files []string) (map[string][]string, error) {
	return m.neighbors(files, func(d models.Dependency) (string, string) {
		return d.FromFile, d.ToFile
	}), nil
}

// Incoming implements EdgeSource.
func (m *MemorySource) Incoming(_ context.Context, files []string) (map[string][]string, error) {
	return m.neighbors(files, func(d models.Dependency) (string, string) {
		return d.ToFile, d.FromFile
	}), nil
}

// Edges implements EdgeSource.
func (m *MemorySource) Edges(_ context.Context) ([]models.Dependency, error) {
	out := make([]models.Dependency, len(m.edges))
	copy(out, m.edges)

	return out, nil
}

// neighbors groups distinct neighbor files under each requested key. The key
// function maps an edge to (key, neighbor) for the wanted direction.
func (m *MemorySource) neighbors(files []string, key func(models.Dependency) (string, string)) map[string][]string {
	wanted := make(map[string]bool, len(files))
	for _, f := range files {
		wanted[f] = true
	}

	seen := make(map[string]map[string]bool)
	result := make(map[string][]string)

	for _, e := range m.edges {
		k, n := key(e)
		if !wanted[k] {
			continue
		}

		if seen[k] == nil {
			seen[k] = make(map[string]bool)
		}

		if seen[k][n] {
			continue
		}

		seen[k][n] = true
		result[k] = append(result[k], n)
	}

	for k := range result {
		sort.Strings(result[k])
	}

	return result
}
