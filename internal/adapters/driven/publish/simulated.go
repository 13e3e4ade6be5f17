// Package publish provides delivery adapters for the publish port.
package publish

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/logger"
)

// Ensure SimulatedPublisher implements the interface.
var _ driven.Publisher = (*SimulatedPublisher)(nil)

// RateLimitConfig holds the per-platform delivery pacing.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits paces simulated uploads per platform, conservative
// against each platform's published API quotas.
var DefaultRateLimits = map[domain.PlatformID]RateLimitConfig{
	domain.PlatformTikTok:    {RequestsPerSecond: 2.0, BurstSize: 4},
	domain.PlatformInstagram: {RequestsPerSecond: 3.0, BurstSize: 5},
	domain.PlatformFacebook:  {RequestsPerSecond: 3.0, BurstSize: 5},
	domain.PlatformYouTube:   {RequestsPerSecond: 1.0, BurstSize: 2},
	domain.PlatformThreads:   {RequestsPerSecond: 3.0, BurstSize: 5},
}

// SimulatedPublisher simulates delivery to each platform. It exercises the
// full delivery path (token source, pacing, post id generation) without
// calling any real platform API, which keeps the publish flow honest about
// what an authorized upload needs while staying offline.
type SimulatedPublisher struct {
	mu       sync.Mutex
	limiters map[domain.PlatformID]*rate.Limiter

	// delay simulates the platform round-trip.
	delay time.Duration
}

// NewSimulatedPublisher creates a simulated publisher.
func NewSimulatedPublisher() *SimulatedPublisher {
	return &SimulatedPublisher{
		limiters: make(map[domain.PlatformID]*rate.Limiter),
		delay:    150 * time.Millisecond,
	}
}

// limiter returns the platform's rate limiter, creating it on first use.
func (p *SimulatedPublisher) limiter(platform domain.PlatformID) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.limiters[platform]; ok {
		return l
	}
	cfg, ok := DefaultRateLimits[platform]
	if !ok {
		cfg = RateLimitConfig{RequestsPerSecond: 2.0, BurstSize: 4}
	}
	l := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize)
	p.limiters[platform] = l
	return l
}

// Publish simulates delivering the video to a platform.
func (p *SimulatedPublisher) Publish(ctx context.Context, conn domain.Connection, video domain.Video, caption string, postType string, at time.Time) (*domain.PostResult, error) {
	if !conn.IsAuthorized() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotConnected, conn.Platform)
	}

	if err := p.limiter(conn.Platform).Wait(ctx); err != nil {
		return nil, err
	}

	// A real upload would hand this source to the platform client.
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conn.AccessToken})
	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("reading token: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.delay):
	}

	result := &domain.PostResult{
		ID:          uuid.NewString(),
		Platform:    conn.Platform,
		PostType:    postType,
		Username:    conn.Username,
		ScheduledAt: at,
	}

	logger.Info("simulated %s post %s delivered for %s (video=%s, caption=%d chars)",
		postType, result.ID, conn.Platform, video.Path, len(caption))
	return result, nil
}
