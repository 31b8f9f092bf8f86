// Package store provides focused, single-concern data access stores for the
// docgraph index.
//
// Each store owns one domain (documents, dependencies) and embeds shared
// helpers (Pool, logger) via the Base struct. Stores never import each other —
// shared logic lives in this file.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/docgraphhq/docgraph/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// maxListLimit is a defense-in-depth cap on limit values for list queries.
const maxListLimit = 1000

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// querier is the read surface shared by the pool and transactions, so query
// helpers can run against either.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// beginReadTx starts a read-only transaction so multi-query reads see one
// consistent snapshot of the edge relation. Repeatable read pins the snapshot
// at the first statement; read committed would take a fresh one per query.
func (b *Base) beginReadTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := b.Pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}

	return tx, nil
}

// CountIndex returns the document and dependency totals from one read
// snapshot, so the pair is mutually consistent under concurrent ingest.
func (b *Base) CountIndex(ctx context.Context) (documents, dependencies int, err error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := b.beginReadTx(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("counting index: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if err := tx.QueryRow(ctx, `SELECT count(*) FROM documents`).Scan(&documents); err != nil {
		return 0, 0, fmt.Errorf("counting documents: %w", err)
	}

	if err := tx.QueryRow(ctx, `SELECT count(*) FROM dependencies`).Scan(&dependencies); err != nil {
		return 0, 0, fmt.Errorf("counting dependencies: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("counting index: %w", err)
	}

	return documents, dependencies, nil
}

// notify sends a pg_notify on the docgraph_changes channel (best-effort,
// post-commit).
func (b *Base) notify(table, op string, count int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, _ := json.Marshal(map[string]any{ //nolint:errcheck // static keys, cannot fail.
		"table": table,
		"op":    op,
		"count": count,
	})
	if _, err := b.Pool.Exec(ctx, "SELECT pg_notify('docgraph_changes', $1)", string(payload)); err != nil {
		b.Log.WithError(err).Warn("failed to send " + op + " " + table + " notification")
	}
}

// clampLimit applies the list-limit cap with a fallback default.
func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}

	if limit > maxListLimit {
		return maxListLimit
	}

	return limit
}
