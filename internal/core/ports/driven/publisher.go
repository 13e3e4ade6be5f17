package driven

import (
	"context"
	"time"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// Publisher delivers a post to a single platform.
type Publisher interface {
	// Publish sends the video with its caption to the platform under the
	// given connection and returns the created post.
	Publish(ctx context.Context, conn domain.Connection, video domain.Video, caption string, postType string, at time.Time) (*domain.PostResult, error)
}
