package mcp

import (
	"context"
	"time"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// mockConnectionService is a mock implementation of driving.ConnectionService.
type mockConnectionService struct {
	platforms  []domain.Platform
	connection *domain.Connection
	err        error
}

func (m *mockConnectionService) Connect(_ context.Context, _ domain.PlatformID) (*driving.ConnectResult, error) {
	return nil, m.err
}

func (m *mockConnectionService) HandleCallback(
	_ context.Context,
	_ domain.PlatformID,
	_, _ string,
) (*domain.Connection, error) {
	return m.connection, m.err
}

func (m *mockConnectionService) SetupGuide(
	_ context.Context,
	platform domain.PlatformID,
) (*domain.SetupGuide, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SetupGuide{Platform: platform}, nil
}

func (m *mockConnectionService) Disconnect(_ context.Context, _ domain.PlatformID) error {
	return m.err
}

func (m *mockConnectionService) Platforms(_ context.Context) ([]domain.Platform, error) {
	return m.platforms, m.err
}

func (m *mockConnectionService) Connection(_ context.Context, _ domain.PlatformID) (*domain.Connection, error) {
	return m.connection, m.err
}

// mockCaptionService is a mock implementation of driving.CaptionService.
type mockCaptionService struct {
	captions []domain.Caption
	err      error
}

func (m *mockCaptionService) Generate(
	_ context.Context,
	_ domain.Video,
	platforms []domain.PlatformID,
) ([]domain.Caption, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.captions != nil {
		return m.captions, nil
	}
	captions := make([]domain.Caption, len(platforms))
	for i, p := range platforms {
		captions[i] = domain.Caption{Platform: p, Text: "caption for " + string(p)}
	}
	return captions, nil
}

// mockPublishService is a mock implementation of driving.PublishService.
type mockPublishService struct {
	results []domain.PostResult
	err     error
}

func (m *mockPublishService) Publish(
	_ context.Context,
	_ domain.Video,
	req domain.PublishRequest,
) ([]domain.PostResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.results != nil {
		return m.results, nil
	}
	results := make([]domain.PostResult, len(req.Selections))
	for i, sel := range req.Selections {
		results[i] = domain.PostResult{
			ID:          "post-1",
			Platform:    sel.Platform,
			PostType:    sel.PostType,
			Username:    "user_" + string(sel.Platform),
			ScheduledAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}
	}
	return results, nil
}

// mockVideoService is a mock implementation of driving.VideoService.
type mockVideoService struct {
	video *domain.Video
	err   error
}

func (m *mockVideoService) Import(_ context.Context, path string) (*domain.Video, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.video != nil {
		return m.video, nil
	}
	return &domain.Video{Path: path, Size: 1024, Duration: 30 * time.Second, Width: 1080, Height: 1920}, nil
}
