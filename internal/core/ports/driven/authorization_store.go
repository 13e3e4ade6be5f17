package driven

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// PendingAuthorizationStore holds the single in-flight authorization attempt.
//
// The store is a one-slot latch: starting a new attempt overwrites whatever
// was pending, and a callback consumes the slot so a replayed redirect cannot
// verify twice.
type PendingAuthorizationStore interface {
	// Put records a pending authorization, replacing any previous one.
	Put(ctx context.Context, pending domain.PendingAuthorization) error

	// Take returns the pending authorization and clears the slot.
	// Returns domain.ErrNotFound when nothing is pending.
	Take(ctx context.Context) (*domain.PendingAuthorization, error)
}
