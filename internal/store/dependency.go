package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/graph"
	"github.com/docgraphhq/docgraph/internal/models"
)

// edgeBatchLimit caps edges fetched per frontier expansion query.
const edgeBatchLimit = 5000

// Compile-time checks: *DependencyStore must satisfy graph.EdgeSource and
// offer snapshot pinning for multi-query traversals.
var (
	_ graph.EdgeSource  = (*DependencyStore)(nil)
	_ graph.Snapshotter = (*DependencyStore)(nil)
)

// DependencyStore provides read/write access to the dependency relation and
// implements graph.EdgeSource for the query engine.
type DependencyStore struct {
	Base
}

// NewDependencyStore creates a new DependencyStore.
func NewDependencyStore(base Base) *DependencyStore {
	return &DependencyStore{Base: base}
}

// ReplaceForFile atomically swaps the outgoing edges of a file for the given
// set. Ingestion calls this after re-parsing a document.
func (s *DependencyStore) ReplaceForFile(ctx context.Context, fromFile string, deps []models.DependencyInput) error {
	if fromFile == "" {
		return models.ErrMissingFilePath
	}

	for i := range deps {
		if err := deps[i].Validate(); err != nil {
			return fmt.Errorf("dependency %d of %s: %w", i, fromFile, err)
		}
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replacing dependencies: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if _, err := tx.Exec(ctx, `DELETE FROM dependencies WHERE from_file = $1`, fromFile); err != nil {
		return fmt.Errorf("clearing dependencies of %s: %w", fromFile, err)
	}

	for _, d := range deps {
		if _, err := tx.Exec(ctx,
			`INSERT INTO dependencies (from_file, to_file, import_type) VALUES ($1, $2, $3)`,
			fromFile, d.ToFile, d.ImportType); err != nil {
			return fmt.Errorf("inserting dependency %s → %s: %w", fromFile, d.ToFile, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing dependency replace: %w", err)
	}

	s.notify("dependencies", "replace", len(deps))

	return nil
}

// ListDependencies returns edges filtered by optional source and target, with
// a hasMore flag for pagination.
func (s *DependencyStore) ListDependencies(ctx context.Context, fromFile, toFile string, limit, offset int) ([]models.Dependency, bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	limit = clampLimit(limit, 100)

	query := `SELECT from_file, to_file, import_type, created_at FROM dependencies
		WHERE ($1 = '' OR from_file = $1) AND ($2 = '' OR to_file = $2)
		ORDER BY from_file, to_file LIMIT $3 OFFSET $4`

	rows, err := s.Pool.Query(ctx, query, fromFile, toFile, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("querying dependencies: %w", err)
	}
	defer rows.Close()

	deps := make([]models.Dependency, 0, limit)

	for rows.Next() {
		var d models.Dependency
		if err := rows.Scan(&d.FromFile, &d.ToFile, &d.ImportType, &d.CreatedAt); err != nil {
			return nil, false, fmt.Errorf("scanning dependency row: %w", err)
		}

		deps = append(deps, d)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating dependency rows: %w", err)
	}

	hasMore := len(deps) > limit
	if hasMore {
		deps = deps[:limit]
	}

	return deps, hasMore, nil
}

// Outgoing implements graph.EdgeSource: distinct targets grouped by source,
// fetched for the whole frontier in one query.
func (s *DependencyStore) Outgoing(ctx context.Context, files []string) (map[string][]string, error) {
	return s.reader(s.Pool).Outgoing(ctx, files)
}

// Incoming implements graph.EdgeSource: distinct sources grouped by target.
func (s *DependencyStore) Incoming(ctx context.Context, files []string) (map[string][]string, error) {
	return s.reader(s.Pool).Incoming(ctx, files)
}

// Edges implements graph.EdgeSource: the entire relation, parallel edges
// included, in stable scan order.
func (s *DependencyStore) Edges(ctx context.Context) ([]models.Dependency, error) {
	return s.reader(s.Pool).Edges(ctx)
}

// Snapshot implements graph.Snapshotter: every query fn issues runs inside
// one read-only repeatable-read transaction, so a traversal's per-level
// frontier queries describe a single state of the relation even while ingest
// commits edge swaps concurrently.
func (s *DependencyStore) Snapshot(ctx context.Context, fn func(graph.EdgeSource) error) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return fmt.Errorf("pinning edge snapshot: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if err := fn(s.reader(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("releasing edge snapshot: %w", err)
	}

	return nil
}

// reader binds the EdgeSource queries to the pool or to a pinned transaction.
func (s *DependencyStore) reader(q querier) *edgeReader {
	return &edgeReader{q: q, log: s.Log, batchLimit: edgeBatchLimit}
}

// edgeReader runs the EdgeSource queries against a querier. Traversals get
// one bound to a snapshot transaction; direct store calls get the pool.
type edgeReader struct {
	q          querier
	log        *logrus.Logger
	batchLimit int
}

var _ graph.EdgeSource = (*edgeReader)(nil)

func (r *edgeReader) Outgoing(ctx context.Context, files []string) (map[string][]string, error) {
	return r.frontierQuery(ctx, files,
		`SELECT DISTINCT from_file, to_file FROM dependencies
			WHERE from_file = ANY($1) ORDER BY from_file, to_file LIMIT `+fmt.Sprintf("%d", r.batchLimit))
}

func (r *edgeReader) Incoming(ctx context.Context, files []string) (map[string][]string, error) {
	return r.frontierQuery(ctx, files,
		`SELECT DISTINCT to_file, from_file FROM dependencies
			WHERE to_file = ANY($1) ORDER BY to_file, from_file LIMIT `+fmt.Sprintf("%d", r.batchLimit))
}

func (r *edgeReader) Edges(ctx context.Context) ([]models.Dependency, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.q.Query(ctx,
		`SELECT from_file, to_file, import_type, created_at FROM dependencies ORDER BY from_file, to_file`)
	if err != nil {
		return nil, fmt.Errorf("querying edge relation: %w", err)
	}
	defer rows.Close()

	edges := make([]models.Dependency, 0, 64)

	for rows.Next() {
		var d models.Dependency
		if err := rows.Scan(&d.FromFile, &d.ToFile, &d.ImportType, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning edge row: %w", err)
		}

		edges = append(edges, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edge rows: %w", err)
	}

	return edges, nil
}

// frontierQuery runs a two-column (key, neighbor) query over the given files
// and groups neighbors under each key. Hitting the batch limit means the
// level was truncated and some reachable nodes may be missing, which is worth
// a warning even though the cap itself is intentional.
func (r *edgeReader) frontierQuery(ctx context.Context, files []string, query string) (map[string][]string, error) {
	result := make(map[string][]string)
	if len(files) == 0 {
		return result, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.q.Query(ctx, query, files)
	if err != nil {
		return nil, fmt.Errorf("querying frontier edges: %w", err)
	}
	defer rows.Close()

	fetched := 0

	for rows.Next() {
		var key, neighbor string
		if err := rows.Scan(&key, &neighbor); err != nil {
			return nil, fmt.Errorf("scanning frontier edge: %w", err)
		}

		fetched++
		result[key] = append(result[key], neighbor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating frontier edges: %w", err)
	}

	if fetched >= r.batchLimit {
		r.log.WithFields(logrus.Fields{
			"frontier": len(files),
			"limit":    r.batchLimit,
		}).Warn("frontier edge batch hit its limit; traversal results may be incomplete")
	}

	return result, nil
}
