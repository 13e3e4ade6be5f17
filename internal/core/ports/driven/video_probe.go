package driven

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// VideoProbe inspects a video file and reports its metadata.
type VideoProbe interface {
	// Probe reads the container at path and fills in duration and
	// dimensions. A container the probe cannot parse returns a video with
	// zero metadata and no error; intake treats it as unverified.
	Probe(ctx context.Context, path string) (*domain.Video, error)
}
