package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docgraphhq/docgraph/internal/models"
	"github.com/docgraphhq/docgraph/internal/store"
)

func upsertTestDocument(t *testing.T, ds *store.DocumentStore, path string) *models.Document {
	t.Helper()

	doc, err := ds.UpsertDocument(context.Background(), models.UpsertDocumentRequest{
		FilePath:    path,
		Title:       "Test " + path,
		ContentHash: "hash-" + path,
	})
	if err != nil {
		t.Fatalf("UpsertDocument %s: %v", path, err)
	}

	return doc
}

func TestUpsertAndGetDocument(t *testing.T) {
	base, prefix := setupTestBase(t)
	ds := store.NewDocumentStore(base)
	ctx := context.Background()

	path := prefix + "guide.md"
	created := upsertTestDocument(t, ds, path)

	if created.FilePath != path {
		t.Errorf("created path = %q, want %q", created.FilePath, path)
	}

	got, err := ds.GetDocument(ctx, path)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}

	if got.ContentHash != created.ContentHash {
		t.Errorf("content hash = %q, want %q", got.ContentHash, created.ContentHash)
	}

	// Re-upserting with the same hash must not advance updated_at.
	again, err := ds.UpsertDocument(ctx, models.UpsertDocumentRequest{
		FilePath:    path,
		Title:       created.Title,
		ContentHash: created.ContentHash,
	})
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	if !again.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("unchanged content advanced updated_at: %v → %v", created.UpdatedAt, again.UpdatedAt)
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	base, prefix := setupTestBase(t)
	ds := store.NewDocumentStore(base)

	_, err := ds.GetDocument(context.Background(), prefix+"missing.md")
	if !errors.Is(err, models.ErrDocumentNotFound) {
		t.Errorf("missing document error = %v, want ErrDocumentNotFound", err)
	}
}

func TestDeleteDocumentRemovesEdges(t *testing.T) {
	base, prefix := setupTestBase(t)
	ds := store.NewDocumentStore(base)
	deps := store.NewDependencyStore(base)
	ctx := context.Background()

	a, b := prefix+"a.md", prefix+"b.md"
	upsertTestDocument(t, ds, a)
	upsertTestDocument(t, ds, b)

	if err := deps.ReplaceForFile(ctx, a, []models.DependencyInput{
		{ToFile: b, ImportType: "link"},
	}); err != nil {
		t.Fatalf("ReplaceForFile: %v", err)
	}

	if err := ds.DeleteDocument(ctx, a); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}

	edges, _, err := deps.ListDependencies(ctx, a, "", 10, 0)
	if err != nil {
		t.Fatalf("ListDependencies: %v", err)
	}

	if len(edges) != 0 {
		t.Errorf("edges survived document delete: %v", edges)
	}
}

func TestDependencyStoreFrontierQueries(t *testing.T) {
	base, prefix := setupTestBase(t)
	ds := store.NewDocumentStore(base)
	deps := store.NewDependencyStore(base)
	ctx := context.Background()

	a, b, c := prefix+"a.md", prefix+"b.md", prefix+"c.md"
	for _, p := range []string{a, b, c} {
		upsertTestDocument(t, ds, p)
	}

	if err := deps.ReplaceForFile(ctx, a, []models.DependencyInput{
		{ToFile: b, ImportType: "link"},
		{ToFile: c, ImportType: "frontmatter"},
	}); err != nil {
		t.Fatalf("ReplaceForFile: %v", err)
	}

	out, err := deps.Outgoing(ctx, []string{a})
	if err != nil {
		t.Fatalf("Outgoing: %v", err)
	}

	if len(out[a]) != 2 {
		t.Errorf("outgoing of a = %v, want [b c]", out[a])
	}

	in, err := deps.Incoming(ctx, []string{b})
	if err != nil {
		t.Fatalf("Incoming: %v", err)
	}

	if len(in[b]) != 1 || in[b][0] != a {
		t.Errorf("incoming of b = %v, want [a]", in[b])
	}
}
