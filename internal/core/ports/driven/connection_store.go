package driven

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// ConnectionStore persists platform connections.
type ConnectionStore interface {
	// Save stores or replaces the connection for its platform.
	Save(ctx context.Context, conn domain.Connection) error

	// Get retrieves the connection for a platform.
	// Returns domain.ErrNotFound when the platform is not connected.
	Get(ctx context.Context, platform domain.PlatformID) (*domain.Connection, error)

	// Remove deletes the connection for a platform.
	// Removing a platform that is not connected is not an error.
	Remove(ctx context.Context, platform domain.PlatformID) error

	// List returns all stored connections.
	List(ctx context.Context) ([]domain.Connection, error)
}
