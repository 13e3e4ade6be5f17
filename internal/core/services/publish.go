package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// Ensure PublishService implements the interface.
var _ driving.PublishService = (*PublishService)(nil)

// PublishService fans a video out to the selected platforms.
type PublishService struct {
	publisher   driven.Publisher
	connections driven.ConnectionStore
	validate    *validator.Validate
	now         func() time.Time
}

// NewPublishService creates a publish service.
func NewPublishService(publisher driven.Publisher, connections driven.ConnectionStore) *PublishService {
	return &PublishService{
		publisher:   publisher,
		connections: connections,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		now:         time.Now,
	}
}

// Publish validates the request and delivers the video to every selected
// platform in order. The first failing platform aborts the run; results for
// platforms already delivered are returned alongside the error.
func (s *PublishService) Publish(ctx context.Context, video domain.Video, req domain.PublishRequest) ([]domain.PostResult, error) {
	if s.publisher == nil || s.connections == nil {
		return nil, domain.ErrNotImplemented
	}

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := video.Validate(); err != nil {
		return nil, err
	}

	at, err := s.scheduledAt(req)
	if err != nil {
		return nil, err
	}

	platforms := domain.DefaultPlatforms()
	byID := make(map[domain.PlatformID]*domain.Platform, len(platforms))
	for i := range platforms {
		byID[platforms[i].ID] = &platforms[i]
	}

	results := make([]domain.PostResult, 0, len(req.Selections))
	for _, sel := range req.Selections {
		platform, ok := byID[sel.Platform]
		if !ok {
			return results, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, sel.Platform)
		}
		if !platform.SupportsPostType(sel.PostType) {
			return results, fmt.Errorf("%w: %s does not offer %q", domain.ErrUnsupportedPostType, sel.Platform, sel.PostType)
		}

		conn, err := s.connections.Get(ctx, sel.Platform)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return results, fmt.Errorf("%w: %s", domain.ErrNotConnected, sel.Platform)
			}
			return results, fmt.Errorf("loading %s connection: %w", sel.Platform, err)
		}

		result, err := s.publisher.Publish(ctx, *conn, video, sel.Caption, sel.PostType, at)
		if err != nil {
			return results, fmt.Errorf("publishing to %s: %w", sel.Platform, err)
		}
		results = append(results, *result)
	}
	return results, nil
}

// scheduledAt resolves the request's schedule to a concrete time. A "later"
// clock time that has already passed today rolls over to tomorrow.
func (s *PublishService) scheduledAt(req domain.PublishRequest) (time.Time, error) {
	now := s.now()
	if req.Schedule == domain.ScheduleNow {
		return now, nil
	}

	clock, err := time.Parse("15:04", req.At)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: schedule time %q: %v", domain.ErrInvalidInput, req.At, err)
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location())
	if at.Before(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}
