package mcp

import (
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Connections manages platform connections.
	Connections driving.ConnectionService

	// Captions generates caption suggestions.
	Captions driving.CaptionService

	// Publish delivers cross-posts.
	Publish driving.PublishService

	// Video handles clip intake.
	Video driving.VideoService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Connections == nil {
		return ErrMissingConnectionService
	}
	// Captions, Publish and Video are optional; their tools report
	// unavailability when invoked.
	return nil
}
