package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "0.3.0"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.Version != "0.3.0" {
		t.Errorf("got version %q, want 0.3.0", resp.Version)
	}
}

func TestStats(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/stats": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, StatsResponse{Documents: 120, Dependencies: 350})
		},
	})
	resp, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if resp.Documents != 120 {
		t.Errorf("got documents %d, want 120", resp.Documents)
	}
}

func TestGraphForwardDeps(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/graph/forward": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("file"); got != "docs/intro.md" {
				t.Errorf("file param = %q", got)
			}
			if got := r.URL.Query().Get("depth"); got != "2" {
				t.Errorf("depth param = %q", got)
			}
			jsonResponse(w, 200, TraversalResponse{
				File:  "docs/intro.md",
				Depth: 2,
				Results: []TraversalResult{
					{File: "docs/guide.md", Depth: 1, Direction: "forward"},
				},
			})
		},
	})
	resp, err := c.Graph.ForwardDeps(context.Background(), "docs/intro.md", 2)
	if err != nil {
		t.Fatalf("ForwardDeps() error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].File != "docs/guide.md" {
		t.Errorf("results = %+v", resp.Results)
	}
}

func TestGraphRelatedDirection(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/graph/related": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("direction"); got != "reverse" {
				t.Errorf("direction param = %q", got)
			}
			jsonResponse(w, 200, TraversalResponse{File: "a.md"})
		},
	})
	if _, err := c.Graph.Related(context.Background(), "a.md", "reverse", 3); err != nil {
		t.Fatalf("Related() error: %v", err)
	}
}

func TestGraphBoundaries(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/graph/entrypoints": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, BoundaryResult{Files: []string{"a.md", "f.md"}})
		},
		"GET /api/v1/graph/leaves": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, BoundaryResult{Files: []string{"d.md"}})
		},
	})
	entries, err := c.Graph.EntryPoints(context.Background())
	if err != nil {
		t.Fatalf("EntryPoints() error: %v", err)
	}
	if len(entries) != 2 || entries[0] != "a.md" {
		t.Errorf("entries = %v", entries)
	}
	leaves, err := c.Graph.LeafNodes(context.Background())
	if err != nil {
		t.Fatalf("LeafNodes() error: %v", err)
	}
	if len(leaves) != 1 || leaves[0] != "d.md" {
		t.Errorf("leaves = %v", leaves)
	}
}

func TestDocumentsGetAndDelete(t *testing.T) {
	deleted := false
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/documents/show": func(w http.ResponseWriter, r *http.Request) {
			jsonResponse(w, 200, Document{FilePath: r.URL.Query().Get("file"), Title: "Intro"})
		},
		"DELETE /api/v1/documents": func(w http.ResponseWriter, _ *http.Request) {
			deleted = true
			w.WriteHeader(204)
		},
	})
	doc, err := c.Documents.Get(context.Background(), "docs/intro.md")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if doc.FilePath != "docs/intro.md" {
		t.Errorf("file path = %q", doc.FilePath)
	}
	if err := c.Documents.Delete(context.Background(), "docs/intro.md"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if !deleted {
		t.Error("delete endpoint not hit")
	}
}

func TestIngestScan(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/ingest": func(w http.ResponseWriter, r *http.Request) {
			var req scanRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			if req.Root != "/corpus" {
				t.Errorf("root = %q", req.Root)
			}
			jsonResponse(w, 200, IngestResult{Scanned: 10, Indexed: 8, Skipped: 2})
		},
	})
	res, err := c.Ingest.Scan(context.Background(), "/corpus")
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if res.Indexed != 8 {
		t.Errorf("indexed = %d, want 8", res.Indexed)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/documents/show": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "document not found"})
		},
	})
	_, err := c.Documents.Get(context.Background(), "missing.md")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Code != "not_found" {
		t.Errorf("error = %#v", err)
	}
}
