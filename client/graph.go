package client

import (
	"context"
	"net/url"
	"strconv"
)

// GraphService handles dependency-graph query operations.
type GraphService struct {
	c *Client
}

func traversalParams(file string, depth int) url.Values {
	params := url.Values{}
	params.Set("file", file)
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}
	return params
}

// ForwardDeps returns everything the file transitively imports, up to maxDepth hops.
func (s *GraphService) ForwardDeps(ctx context.Context, file string, maxDepth int) (*TraversalResponse, error) {
	var resp TraversalResponse
	if err := s.c.get(ctx, "/api/v1/graph/forward", traversalParams(file, maxDepth), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReverseDeps returns everything that transitively imports the file.
func (s *GraphService) ReverseDeps(ctx context.Context, file string, maxDepth int) (*TraversalResponse, error) {
	var resp TraversalResponse
	if err := s.c.get(ctx, "/api/v1/graph/reverse", traversalParams(file, maxDepth), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Related returns the combined neighborhood of the file. Direction is
// "forward", "reverse", or "both"; empty means both.
func (s *GraphService) Related(ctx context.Context, file, direction string, maxDepth int) (*TraversalResponse, error) {
	params := traversalParams(file, maxDepth)
	if direction != "" {
		params.Set("direction", direction)
	}
	var resp TraversalResponse
	if err := s.c.get(ctx, "/api/v1/graph/related", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Adjacency returns the full forward adjacency map of the index.
func (s *GraphService) Adjacency(ctx context.Context) (*AdjacencyResult, error) {
	var resp AdjacencyResult
	if err := s.c.get(ctx, "/api/v1/graph/adjacency", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EntryPoints returns the files nothing depends on.
func (s *GraphService) EntryPoints(ctx context.Context) ([]string, error) {
	var resp BoundaryResult
	if err := s.c.get(ctx, "/api/v1/graph/entrypoints", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// LeafNodes returns the files that depend on nothing further.
func (s *GraphService) LeafNodes(ctx context.Context) ([]string, error) {
	var resp BoundaryResult
	if err := s.c.get(ctx, "/api/v1/graph/leaves", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}
