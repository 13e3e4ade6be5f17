package memory

import (
	"context"
	"sync"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
)

// Ensure ConnectionStore implements the interface.
var _ driven.ConnectionStore = (*ConnectionStore)(nil)

// ConnectionStore is an in-memory implementation of driven.ConnectionStore.
type ConnectionStore struct {
	mu          sync.RWMutex
	connections map[domain.PlatformID]domain.Connection
}

// NewConnectionStore creates a new in-memory connection store.
func NewConnectionStore() *ConnectionStore {
	return &ConnectionStore{
		connections: make(map[domain.PlatformID]domain.Connection),
	}
}

// Save stores or replaces the connection for its platform.
func (s *ConnectionStore) Save(_ context.Context, conn domain.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[conn.Platform] = conn
	return nil
}

// Get retrieves the connection for a platform.
func (s *ConnectionStore) Get(_ context.Context, platform domain.PlatformID) (*domain.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conn, ok := s.connections[platform]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &conn, nil
}

// Remove deletes the connection for a platform.
func (s *ConnectionStore) Remove(_ context.Context, platform domain.PlatformID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.connections, platform)
	return nil
}

// List returns all stored connections.
func (s *ConnectionStore) List(_ context.Context) ([]domain.Connection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Connection, 0, len(s.connections))
	for _, conn := range s.connections {
		result = append(result, conn)
	}
	return result, nil
}
