package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/docgraphhq/docgraph/internal/api"
	"github.com/docgraphhq/docgraph/internal/ingest"
	"github.com/docgraphhq/docgraph/internal/models"
)

func newDocumentRouter(repo *mockDocumentRepo) *gin.Engine {
	r := gin.New()
	h := api.NewDocumentHandler(repo, testLogger())
	r.GET("/documents", h.List)
	r.GET("/documents/show", h.Show)
	r.DELETE("/documents", h.Delete)
	r.GET("/dependencies", h.Dependencies)

	return r
}

func TestDocumentShow(t *testing.T) {
	repo := &mockDocumentRepo{
		getFn: func(_ context.Context, filePath string) (*models.Document, error) {
			return &models.Document{FilePath: filePath, Title: "Intro"}, nil
		},
	}

	r := newDocumentRouter(repo)
	w := doRequest(r, http.MethodGet, "/documents/show?file="+url.QueryEscape("docs/intro.md"), "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var doc models.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decoding document: %v", err)
	}

	if doc.FilePath != "docs/intro.md" || doc.Title != "Intro" {
		t.Errorf("document = %+v", doc)
	}
}

func TestDocumentShowNotFound(t *testing.T) {
	repo := &mockDocumentRepo{
		getFn: func(context.Context, string) (*models.Document, error) {
			return nil, models.ErrDocumentNotFound
		},
	}

	r := newDocumentRouter(repo)
	w := doRequest(r, http.MethodGet, "/documents/show?file=missing.md", "")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDocumentList(t *testing.T) {
	repo := &mockDocumentRepo{
		listFn: func(_ context.Context, limit, offset int) ([]models.Document, bool, error) {
			if limit != 2 || offset != 4 {
				t.Errorf("list called with limit=%d offset=%d", limit, offset)
			}

			return []models.Document{{FilePath: "a.md"}, {FilePath: "b.md"}}, true, nil
		},
	}

	r := newDocumentRouter(repo)
	w := doRequest(r, http.MethodGet, "/documents?limit=2&offset=4", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Items   []models.Document `json:"items"`
		HasMore bool              `json:"has_more"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding list: %v", err)
	}

	if len(resp.Items) != 2 || !resp.HasMore {
		t.Errorf("list response = %+v", resp)
	}
}

func TestDocumentDelete(t *testing.T) {
	deleted := ""
	repo := &mockDocumentRepo{
		deleteFn: func(_ context.Context, filePath string) error {
			deleted = filePath

			return nil
		},
	}

	r := newDocumentRouter(repo)
	w := doRequest(r, http.MethodDelete, "/documents?file=a.md", "")

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}

	if deleted != "a.md" {
		t.Errorf("deleted = %q", deleted)
	}
}

func TestDependenciesFilter(t *testing.T) {
	repo := &mockDocumentRepo{
		listDepsFn: func(_ context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error) {
			if fromFile != "a.md" || toFile != "" {
				t.Errorf("filters = (%q, %q)", fromFile, toFile)
			}

			return []models.Dependency{{FromFile: "a.md", ToFile: "b.md", ImportType: "link"}}, false, nil
		},
	}

	r := newDocumentRouter(repo)
	w := doRequest(r, http.MethodGet, "/dependencies?from=a.md", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestIngestScan(t *testing.T) {
	repo := &mockIngestRepo{
		scanFn: func(_ context.Context, root string) (*ingest.Result, error) {
			if root != "/corpus" {
				t.Errorf("root = %q", root)
			}

			return &ingest.Result{Scanned: 5, Indexed: 4, Skipped: 1, Edges: 9}, nil
		},
	}

	r := gin.New()
	h := api.NewIngestHandler(repo, testLogger(), "/default")
	r.POST("/ingest", h.Scan)

	w := doRequest(r, http.MethodPost, "/ingest", `{"root":"/corpus"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var res ingest.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding result: %v", err)
	}

	if res.Indexed != 4 || res.Edges != 9 {
		t.Errorf("result = %+v", res)
	}
}

func TestIngestScanDefaultsRoot(t *testing.T) {
	repo := &mockIngestRepo{
		scanFn: func(_ context.Context, root string) (*ingest.Result, error) {
			if root != "/default" {
				t.Errorf("root = %q, want configured default", root)
			}

			return &ingest.Result{}, nil
		},
	}

	r := gin.New()
	h := api.NewIngestHandler(repo, testLogger(), "/default")
	r.POST("/ingest", h.Scan)

	w := doRequest(r, http.MethodPost, "/ingest", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestStats(t *testing.T) {
	repo := &mockDocumentRepo{
		statsFn: func(context.Context) (*models.StatsResult, error) {
			return &models.StatsResult{Documents: 10, Dependencies: 25}, nil
		},
	}

	r := gin.New()
	h := api.NewStatsHandler(repo, testLogger())
	r.GET("/stats", h.GetStats)

	w := doRequest(r, http.MethodGet, "/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var stats models.StatsResult
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}

	if stats.Documents != 10 || stats.Dependencies != 25 {
		t.Errorf("stats = %+v", stats)
	}
}
