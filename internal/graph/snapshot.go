package graph

import "context"

// Snapshotter is an optional EdgeSource capability. Snapshot runs fn against
// a view of the relation that concurrent writers cannot change mid-read; the
// Postgres store implements it with a read-only repeatable-read transaction.
// A multi-query operation on a source without the capability runs directly
// against the source.
type Snapshotter interface {
	Snapshot(ctx context.Context, fn func(EdgeSource) error) error
}

// inSnapshot pins src for the duration of fn when the source supports it.
// Operations that issue more than one store query go through here so an edge
// swap committed between frontier levels cannot produce a frontier view no
// single relation state ever had.
func inSnapshot(ctx context.Context, src EdgeSource, fn func(EdgeSource) error) error {
	if s, ok := src.(Snapshotter); ok {
		return s.Snapshot(ctx, fn)
	}

	return fn(src)
}
