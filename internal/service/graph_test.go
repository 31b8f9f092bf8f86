package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/docgraphhq/docgraph/internal/graph"
	"github.com/docgraphhq/docgraph/internal/models"
)

func testSource() *graph.MemorySource {
	src := graph.NewMemorySource(nil)
	src.Add("a.md", "b.md", "link")
	src.Add("b.md", "c.md", "link")

	return src
}

func TestGraphServiceForwardDeps(t *testing.T) {
	t.Parallel()

	svc := NewGraphService(testSource(), testLogger())

	got, err := svc.ForwardDeps(context.Background(), "a.md", 2)
	if err != nil {
		t.Fatalf("ForwardDeps: %v", err)
	}

	want := []models.TraversalResult{
		{File: "b.md", Depth: 1, Direction: models.DirectionForward},
		{File: "c.md", Depth: 2, Direction: models.DirectionForward},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardDeps = %v, want %v", got, want)
	}
}

func TestGraphServiceRelatedDefaultsToBoth(t *testing.T) {
	t.Parallel()

	svc := NewGraphService(testSource(), testLogger())

	got, err := svc.Related(context.Background(), "b.md", "", 1)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}

	want := []models.TraversalResult{
		{File: "a.md", Depth: 1, Direction: models.DirectionReverse},
		{File: "c.md", Depth: 1, Direction: models.DirectionForward},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Related = %v, want %v", got, want)
	}
}

func TestGraphServiceBoundaries(t *testing.T) {
	t.Parallel()

	svc := NewGraphService(testSource(), testLogger())
	ctx := context.Background()

	entries, err := svc.EntryPoints(ctx)
	if err != nil {
		t.Fatalf("EntryPoints: %v", err)
	}

	if !reflect.DeepEqual(entries, []string{"a.md"}) {
		t.Errorf("EntryPoints = %v, want [a.md]", entries)
	}

	leaves, err := svc.LeafNodes(ctx)
	if err != nil {
		t.Fatalf("LeafNodes: %v", err)
	}

	if !reflect.DeepEqual(leaves, []string{"c.md"}) {
		t.Errorf("LeafNodes = %v, want [c.md]", leaves)
	}
}
