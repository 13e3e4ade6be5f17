package services

import (
	"context"
	"fmt"
	"time"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// Ensure ConnectionService implements the interface.
var _ driving.ConnectionService = (*ConnectionService)(nil)

// ConnectionService owns the platform connection lifecycle: starting an
// authorization attempt, verifying the provider callback, and connecting or
// disconnecting platforms.
type ConnectionService struct {
	resolver    *OAuthConfigResolver
	connections driven.ConnectionStore
	pending     driven.PendingAuthorizationStore

	// origin reports the callback origin, evaluated per attempt because
	// the local callback server picks its port at runtime.
	origin func() string

	now func() time.Time
}

// NewConnectionService creates a connection service. The origin function
// must report the callback server's origin, e.g. "http://localhost:8080".
func NewConnectionService(
	resolver *OAuthConfigResolver,
	connections driven.ConnectionStore,
	pending driven.PendingAuthorizationStore,
	origin func() string,
) *ConnectionService {
	return &ConnectionService{
		resolver:    resolver,
		connections: connections,
		pending:     pending,
		origin:      origin,
		now:         time.Now,
	}
}

// Connect starts an authorization attempt for a platform.
//
// When the resolved provider has no real client id, the result carries setup
// guidance instead of a URL and no pending authorization is recorded.
// Otherwise a fresh state token is issued, the pending slot is overwritten
// (a second attempt abandons the first) and the consent URL is returned.
func (s *ConnectionService) Connect(ctx context.Context, platform domain.PlatformID) (*driving.ConnectResult, error) {
	if s.connections == nil || s.pending == nil {
		return nil, domain.ErrNotImplemented
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}

	cfg := s.resolver.Resolve(platform, s.origin())
	if !cfg.IsConfigured() {
		return &driving.ConnectResult{
			NeedsSetup: true,
			SetupGuide: setupGuideFor(platform, cfg.RedirectURI),
		}, nil
	}

	state := domain.NewAuthState(platform, s.now())
	if err := s.pending.Put(ctx, domain.PendingAuthorization{
		State:     state,
		Platform:  platform,
		CreatedAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("recording pending authorization: %w", err)
	}

	authURL, err := BuildAuthorizationURL(cfg, platform, state)
	if err != nil {
		return nil, err
	}

	return &driving.ConnectResult{
		AuthorizationURL: authURL,
		State:            state,
	}, nil
}

// SetupGuide returns the developer setup walkthrough for a platform. It
// only resolves the provider configuration; unlike Connect it never writes
// a pending authorization, so an in-flight attempt survives it.
func (s *ConnectionService) SetupGuide(_ context.Context, platform domain.PlatformID) (*domain.SetupGuide, error) {
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}

	cfg := s.resolver.Resolve(platform, s.origin())
	guide := setupGuideFor(platform, cfg.RedirectURI)
	guide.Configured = cfg.IsConfigured()
	return guide, nil
}

// HandleCallback verifies a provider redirect against the pending
// authorization and persists the resulting connection.
//
// The pending slot is consumed before verification, so a replayed redirect
// fails with ErrMissingPendingAuthorization and a forged one with
// ErrStateMismatch. The stored state and platform must equal the callback's
// values exactly.
func (s *ConnectionService) HandleCallback(ctx context.Context, platform domain.PlatformID, code, state string) (*domain.Connection, error) {
	if s.connections == nil || s.pending == nil {
		return nil, domain.ErrNotImplemented
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	p, err := s.pending.Take(ctx)
	if err != nil {
		return nil, domain.ErrMissingPendingAuthorization
	}
	// The slot is gone at this point whatever happens next. A redirect
	// without a code still spends the attempt.
	if code == "" {
		return nil, fmt.Errorf("%w: missing authorization code", domain.ErrInvalidInput)
	}
	if !p.Matches(platform, state) {
		return nil, fmt.Errorf("%w: callback for %s did not match pending attempt for %s",
			domain.ErrStateMismatch, platform, p.Platform)
	}

	conn := s.newConnection(platform, code)
	if err := s.connections.Save(ctx, conn); err != nil {
		return nil, fmt.Errorf("saving connection: %w", err)
	}
	return &conn, nil
}

// newConnection synthesizes the connection record for a verified callback.
// Token exchange is out of scope, so the token is a mock value.
func (s *ConnectionService) newConnection(platform domain.PlatformID, code string) domain.Connection {
	now := s.now()
	conn := domain.Connection{
		Platform:    platform,
		AccessToken: fmt.Sprintf("mock_token_%d", now.UnixMilli()),
		Username:    fmt.Sprintf("user_%s", platform),
		Code:        code,
		ConnectedAt: now,
	}
	switch platform {
	case domain.PlatformFacebook, domain.PlatformInstagram, domain.PlatformThreads:
		conn.AppID = s.resolver.clientID(platform, envMetaAppID, metaAppID)
	case domain.PlatformTikTok:
		conn.ClientKey = s.resolver.clientID(platform, envTikTokKey, tiktokClientKey)
	}
	return conn
}

// Disconnect removes a platform's connection. Idempotent.
func (s *ConnectionService) Disconnect(ctx context.Context, platform domain.PlatformID) error {
	if s.connections == nil {
		return domain.ErrNotImplemented
	}
	if !platform.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	return s.connections.Remove(ctx, platform)
}

// Platforms returns the platform list with connection status applied.
func (s *ConnectionService) Platforms(ctx context.Context) ([]domain.Platform, error) {
	if s.connections == nil {
		return nil, domain.ErrNotImplemented
	}

	conns, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	byPlatform := make(map[domain.PlatformID]domain.Connection, len(conns))
	for _, c := range conns {
		byPlatform[c.Platform] = c
	}

	platforms := domain.DefaultPlatforms()
	for i := range platforms {
		if c, ok := byPlatform[platforms[i].ID]; ok {
			platforms[i].Connected = true
			platforms[i].Username = c.Username
		}
	}
	return platforms, nil
}

// Connection returns the stored connection for a platform.
func (s *ConnectionService) Connection(ctx context.Context, platform domain.PlatformID) (*domain.Connection, error) {
	if s.connections == nil {
		return nil, domain.ErrNotImplemented
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	return s.connections.Get(ctx, platform)
}
