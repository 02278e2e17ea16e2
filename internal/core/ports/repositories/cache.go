package repositories

import (
	"context"
)

// StatementCache stores rendered statements keyed by their parameters and the ledger generation.
// Implementations must treat backend failures as misses.
type StatementCache interface {
	// Get loads a cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) bool

	// Set stores a value under key.
	Set(ctx context.Context, key string, value any)

	// Generation returns the current ledger generation.
	Generation(ctx context.Context) int64

	// Invalidate bumps the ledger generation so every cached statement becomes stale.
	Invalidate(ctx context.Context)
}
