package driving

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// PublishService delivers a video to the selected platforms.
type PublishService interface {
	// Publish validates the request, checks every selected platform is
	// connected and supports its post type, and delivers the video.
	// Results are returned in selection order.
	Publish(ctx context.Context, video domain.Video, req domain.PublishRequest) ([]domain.PostResult, error)
}
