package driving

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// VideoService handles clip intake.
type VideoService interface {
	// Import inspects the file at path, probes its metadata and enforces
	// the intake limits.
	Import(ctx context.Context, path string) (*domain.Video, error)
}
