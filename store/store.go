// Package store defines the transcript storage interface and implementations.
package store

import (
	"context"

	"github.com/amondal/halchat/domain"
)

// Store defines the interface for transcript persistence. Transcripts are
// keyed by session ID, append-only, and order-preserving.
type Store interface {
	// AppendTurn adds a turn at the end of its session's transcript.
	AppendTurn(ctx context.Context, turn *domain.Turn) error

	// Snapshot returns the full ordered transcript for a session.
	Snapshot(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// Reset clears the transcript for a session. Resetting an empty or
	// unknown session is a no-op.
	Reset(ctx context.Context, sessionID string) error

	// Lifecycle
	Close() error
}
