package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/docgraphhq/docgraph/internal/models"
)

// pathState is one in-flight exploration path: the node at its tip and the
// set of nodes visited along this path (origin included). Cycle pruning is
// scoped to the path, so the same node stays reachable via alternate paths.
type pathState struct {
	node    string
	visited map[string]bool
}

// extend returns a new pathState rooted at next with a copied visited set.
func (p pathState) extend(next string) pathState {
	visited := make(map[string]bool, len(p.visited)+1)
	for n := range p.visited {
		visited[n] = true
	}
	visited[next] = true

	return pathState{node: next, visited: visited}
}

// Traverse performs a breadth-first expansion from origin along the chosen
// direction, up to maxDepth hops. A node already on the current path is pruned
// from that path only; diamond-shaped graphs legitimately reach the same node
// via multiple paths, and the final result keeps the minimum depth observed
// across all of them. The origin itself is never part of the result.
//
// An origin absent from the relation, an empty origin, or maxDepth < 1 all
// yield an empty result, not an error. Store failures propagate unchanged.
func Traverse(
	ctx context.Context,
	src EdgeSource,
	origin string,
	direction models.Direction,
	maxDepth int,
) ([]models.TraversalResult, error) {
	if !direction.Valid() {
		return nil, fmt.Errorf("traversing from %q: %w", origin, models.ErrInvalidDirection)
	}

	var results []models.TraversalResult

	err := inSnapshot(ctx, src, func(src EdgeSource) error {
		var err error
		results, err = traverse(ctx, src, origin, direction, maxDepth)

		return err
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// traverse is the BFS body. It issues one store query per depth level, so the
// caller must have pinned src to a single snapshot first.
func traverse(
	ctx context.Context,
	src EdgeSource,
	origin string,
	direction models.Direction,
	maxDepth int,
) ([]models.TraversalResult, error) {
	results := make([]models.TraversalResult, 0)
	if origin == "" || maxDepth < 1 {
		return results, nil
	}

	minDepth := make(map[string]int)
	frontier := []pathState{{node: origin, visited: map[string]bool{origin: true}}}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		neighbors, err := expand(ctx, src, direction, frontier)
		if err != nil {
			return nil, err
		}

		var next []pathState

		for _, p := range frontier {
			for _, n := range neighbors[p.node] {
				if p.visited[n] {
					continue
				}

				if d, ok := minDepth[n]; !ok || depth < d {
					minDepth[n] = depth
				}

				next = append(next, p.extend(n))
			}
		}

		frontier = next
	}

	for file, depth := range minDepth {
		results = append(results, models.TraversalResult{File: file, Depth: depth, Direction: direction})
	}

	sortResults(results)

	return results, nil
}

// expand fetches the neighbor map for the distinct frontier nodes in a single
// store round trip per level.
func expand(ctx context.Context, src EdgeSource, direction models.Direction, frontier []pathState) (map[string][]string, error) {
	seen := make(map[string]bool, len(frontier))
	files := make([]string, 0, len(frontier))

	for _, p := range frontier {
		if seen[p.node] {
			continue
		}

		seen[p.node] = true
		files = append(files, p.node)
	}

	if direction == models.DirectionForward {
		m, err := src.Outgoing(ctx, files)
		if err != nil {
			return nil, fmt.Errorf("expanding forward frontier: %w", err)
		}

		return m, nil
	}

	m, err := src.Incoming(ctx, files)
	if err != nil {
		return nil, fmt.Errorf("expanding reverse frontier: %w", err)
	}

	return m, nil
}

// sortResults orders traversal output by depth ascending, then file ascending,
// then direction ascending ("forward" before "reverse"). The direction key
// only matters for merged composer output; within a single traversal it is a
// no-op.
func sortResults(results []models.TraversalResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Depth != results[j].Depth {
			return results[i].Depth < results[j].Depth
		}

		if results[i].File != results[j].File {
			return results[i].File < results[j].File
		}

		return results[i].Direction < results[j].Direction
	})
}
