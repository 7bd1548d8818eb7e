// Package store abstracts session persistence behind a single interface so
// the pipeline never touches a concrete backend. Backends: in-process memory
// (default), Redis with TTL idle eviction, Postgres for durable snapshots.
package store

import (
	"context"
	"errors"

	"github.com/Aryan1092raj/HoneyPot/internal/session"
)

// ErrNotFound is returned by Get when no session exists for the id.
var ErrNotFound = errors.New("session not found")

// Store is the session persistence contract. Implementations must be safe
// for concurrent use; per-session mutual exclusion during pipeline runs is
// the engine's job, not the store's.
type Store interface {
	// Get fetches the session for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)
	// Put saves the session, creating or replacing it, and refreshes any
	// backend idle timer.
	Put(ctx context.Context, s *session.Session) error
	// List returns all live sessions.
	List(ctx context.Context) ([]*session.Session, error)
	// Close releases backend resources.
	Close()
}
