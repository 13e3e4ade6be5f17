package driving

import (
	"context"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// ConnectResult is the outcome of starting a connection attempt.
type ConnectResult struct {
	// AuthorizationURL is the provider consent page to open. Empty when
	// the provider still needs developer setup.
	AuthorizationURL string

	// State is the anti-forgery value carried through the redirect.
	State string

	// NeedsSetup is true when the provider has no real client ID yet.
	// No authorization was recorded and nothing should be opened.
	NeedsSetup bool

	// SetupGuide holds the developer setup instructions when NeedsSetup.
	SetupGuide *domain.SetupGuide
}

// ConnectionService manages the platform connection lifecycle.
type ConnectionService interface {
	// Connect starts an authorization attempt for a platform. It resolves
	// the provider configuration, records the pending attempt and returns
	// the consent URL, or setup guidance for unconfigured providers.
	Connect(ctx context.Context, platform domain.PlatformID) (*ConnectResult, error)

	// HandleCallback verifies a provider redirect against the pending
	// attempt and stores the resulting connection.
	HandleCallback(ctx context.Context, platform domain.PlatformID, code, state string) (*domain.Connection, error)

	// SetupGuide returns the developer setup walkthrough for a platform.
	// It only resolves configuration; no authorization attempt is started
	// and the pending record is left alone.
	SetupGuide(ctx context.Context, platform domain.PlatformID) (*domain.SetupGuide, error)

	// Disconnect removes a platform's connection. Disconnecting a platform
	// that is not connected is not an error.
	Disconnect(ctx context.Context, platform domain.PlatformID) error

	// Platforms returns all platforms with their connection status filled in.
	Platforms(ctx context.Context) ([]domain.Platform, error)

	// Connection returns the stored connection for a platform.
	Connection(ctx context.Context, platform domain.PlatformID) (*domain.Connection, error)
}
