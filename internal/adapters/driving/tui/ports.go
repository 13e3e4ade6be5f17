// Package tui provides the interactive cross-posting wizard for CrossPost.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
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

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	connections driving.ConnectionService,
	captions driving.CaptionService,
	publish driving.PublishService,
	video driving.VideoService,
) *Ports {
	return &Ports{
		Connections: connections,
		Captions:    captions,
		Publish:     publish,
		Video:       video,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Connections == nil {
		return ErrMissingConnectionService
	}
	if p.Publish == nil {
		return ErrMissingPublishService
	}
	if p.Video == nil {
		return ErrMissingVideoService
	}
	return nil
}
