package driving

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// CaptionService produces per-platform caption suggestions.
type CaptionService interface {
	// Generate returns a caption suggestion for each requested platform.
	Generate(ctx context.Context, video domain.Video, platforms []domain.PlatformID) ([]domain.Caption, error)
}
