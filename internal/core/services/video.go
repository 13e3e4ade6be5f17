package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// Ensure VideoService implements the interface.
var _ driving.VideoService = (*VideoService)(nil)

// VideoService handles clip intake.
type VideoService struct {
	probe driven.VideoProbe
}

// NewVideoService creates a video service. The probe is optional; without
// it clips import with unverified duration and dimensions.
func NewVideoService(probe driven.VideoProbe) *VideoService {
	return &VideoService{probe: probe}
}

// Import inspects the file at path, probes its metadata and enforces the
// intake limits.
func (s *VideoService) Import(ctx context.Context, path string) (*domain.Video, error) {
	if !domain.IsVideoFile(path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrVideoUnsupported, filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	video := &domain.Video{Path: path, Size: info.Size()}
	if s.probe != nil {
		probed, err := s.probe.Probe(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("probing %s: %w", path, err)
		}
		video.Duration = probed.Duration
		video.Width = probed.Width
		video.Height = probed.Height
	}

	if err := video.Validate(); err != nil {
		return nil, err
	}
	return video, nil
}
