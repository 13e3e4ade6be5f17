package services

import (
	"context"
	"fmt"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
	"github.com/crosspost-labs/crosspost-cli/internal/logger"
)

// Ensure CaptionService implements the interface.
var _ driving.CaptionService = (*CaptionService)(nil)

// CaptionService produces per-platform caption suggestions.
type CaptionService struct {
	generator driven.CaptionGenerator
}

// NewCaptionService creates a caption service.
func NewCaptionService(generator driven.CaptionGenerator) *CaptionService {
	return &CaptionService{generator: generator}
}

// Generate returns one caption suggestion per requested platform, in
// request order. Unknown platforms are skipped.
func (s *CaptionService) Generate(ctx context.Context, video domain.Video, platforms []domain.PlatformID) ([]domain.Caption, error) {
	if s.generator == nil {
		return nil, domain.ErrNotImplemented
	}

	captions := make([]domain.Caption, 0, len(platforms))
	for _, platform := range platforms {
		if !platform.Valid() {
			logger.Debug("captions: skipping unknown platform %q", platform)
			continue
		}
		text, err := s.generator.Generate(ctx, platform, video)
		if err != nil {
			return nil, fmt.Errorf("generating %s caption: %w", platform, err)
		}
		captions = append(captions, domain.Caption{Platform: platform, Text: text})
	}
	return captions, nil
}
