// Package snapshot persists the four named entity snapshots. Every
// mutation rewrites a snapshot in full; there is no delta persistence and
// no versioning, so a backend only has to be a key-value store of
// serialized documents.
package snapshot

import (
	"context"
	"errors"
)

// Snapshot names. Each holds one self-contained serialized collection.
const (
	Pillars  = "pillars"
	Goals    = "goals"
	Habits   = "habits"
	Settings = "settings"
)

// ErrNotFound is returned by Get when a snapshot has never been written.
var ErrNotFound = errors.New("snapshot not found")

// Store is a named-snapshot persistence backend.
type Store interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, doc []byte) error
	Delete(ctx context.Context, name string) error
}
