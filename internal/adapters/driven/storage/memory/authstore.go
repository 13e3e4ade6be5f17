package memory

import (
	"context"
	"sync"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
)

// Ensure PendingAuthorizationStore implements the interface.
var _ driven.PendingAuthorizationStore = (*PendingAuthorizationStore)(nil)

// PendingAuthorizationStore is an in-memory single-slot implementation of
// driven.PendingAuthorizationStore.
type PendingAuthorizationStore struct {
	mu      sync.Mutex
	pending *domain.PendingAuthorization
}

// NewPendingAuthorizationStore creates a new in-memory pending
// authorization store.
func NewPendingAuthorizationStore() *PendingAuthorizationStore {
	return &PendingAuthorizationStore{}
}

// Put records a pending authorization, replacing any previous one.
func (s *PendingAuthorizationStore) Put(_ context.Context, pending domain.PendingAuthorization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &pending
	return nil
}

// Take returns the pending authorization and clears the slot.
func (s *PendingAuthorizationStore) Take(_ context.Context) (*domain.PendingAuthorization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil, domain.ErrNotFound
	}
	p := s.pending
	s.pending = nil
	return p, nil
}
