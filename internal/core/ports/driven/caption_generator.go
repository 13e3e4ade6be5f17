package driven

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// CaptionGenerator produces a platform-appropriate caption for a video.
type CaptionGenerator interface {
	// Generate returns a caption styled for the platform.
	Generate(ctx context.Context, platform domain.PlatformID, video domain.Video) (string, error)
}
