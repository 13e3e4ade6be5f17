// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// Step identifies one wizard step.
type Step int

const (
	// StepUpload asks for the video file.
	StepUpload Step = iota

	// StepEdit selects platforms and captions.
	StepEdit

	// StepPublish delivers the cross-post.
	StepPublish

	// StepDone shows the post results.
	StepDone
)

// VideoImported carries the intake result for the chosen file.
type VideoImported struct {
	Video *domain.Video
	Err   error
}

// PlatformsLoaded carries the platform list with connection status.
type PlatformsLoaded struct {
	Platforms []domain.Platform
	Err       error
}

// CaptionsGenerated carries generated captions back to the model.
type CaptionsGenerated struct {
	Captions []domain.Caption
	Err      error
}

// Published carries the delivery results.
type Published struct {
	Results []domain.PostResult
	Err     error
}
