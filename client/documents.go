package client

import (
	"context"
	"net/url"
	"strconv"
)

// DocumentService handles document catalog operations.
type DocumentService struct {
	c *Client
}

// List returns a page of documents ordered by file path.
func (s *DocumentService) List(ctx context.Context, limit, offset int) (*DocumentList, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var resp DocumentList
	if err := s.c.get(ctx, "/api/v1/documents", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get returns a document by its root-relative file path.
func (s *DocumentService) Get(ctx context.Context, file string) (*Document, error) {
	params := url.Values{}
	params.Set("file", file)
	var resp Document
	if err := s.c.get(ctx, "/api/v1/documents/show", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes a document and every edge touching it.
func (s *DocumentService) Delete(ctx context.Context, file string) error {
	params := url.Values{}
	params.Set("file", file)
	return s.c.del(ctx, "/api/v1/documents", params, nil)
}

// Dependencies returns a page of edges, optionally filtered by endpoint.
func (s *DocumentService) Dependencies(ctx context.Context, fromFile, toFile string, limit, offset int) (*DependencyList, error) {
	params := url.Values{}
	if fromFile != "" {
		params.Set("from", fromFile)
	}
	if toFile != "" {
		params.Set("to", toFile)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	var resp DependencyList
	if err := s.c.get(ctx, "/api/v1/dependencies", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
