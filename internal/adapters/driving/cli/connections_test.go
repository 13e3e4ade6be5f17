package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/callback"
	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
)

// stubConnectionService implements driving.ConnectionService for CLI tests.
type stubConnectionService struct {
	platforms    []domain.Platform
	disconnected []domain.PlatformID
	connectCalls int
}

func (s *stubConnectionService) Connect(
	_ context.Context, _ domain.PlatformID,
) (*driving.ConnectResult, error) {
	s.connectCalls++
	return &driving.ConnectResult{
		NeedsSetup: true,
		SetupGuide: &domain.SetupGuide{
			Platform:    domain.PlatformYouTube,
			Intro:       "Create a Google Cloud project",
			RedirectURI: "http://localhost:8080?platform=youtube",
		},
	}, nil
}

func (s *stubConnectionService) SetupGuide(
	_ context.Context, platform domain.PlatformID,
) (*domain.SetupGuide, error) {
	return &domain.SetupGuide{
		Platform:    platform,
		Intro:       "Create a Google Cloud project",
		RedirectURI: "http://localhost:8080?platform=" + string(platform),
	}, nil
}

func (s *stubConnectionService) HandleCallback(
	_ context.Context, _ domain.PlatformID, _, _ string,
) (*domain.Connection, error) {
	return nil, domain.ErrMissingPendingAuthorization
}

func (s *stubConnectionService) Disconnect(_ context.Context, platform domain.PlatformID) error {
	s.disconnected = append(s.disconnected, platform)
	return nil
}

func (s *stubConnectionService) Platforms(_ context.Context) ([]domain.Platform, error) {
	return s.platforms, nil
}

func (s *stubConnectionService) Connection(
	_ context.Context, _ domain.PlatformID,
) (*domain.Connection, error) {
	return nil, domain.ErrNotFound
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)
	return buf.String()
}

func TestConnectionsListCmd(t *testing.T) {
	original := connectionService
	defer func() { connectionService = original }()

	connectionService = &stubConnectionService{
		platforms: []domain.Platform{
			{ID: domain.PlatformTikTok, Name: "TikTok", Icon: "🎵", Connected: true,
				Username: "user_tiktok", PostTypes: []string{"video"}},
			{ID: domain.PlatformThreads, Name: "Threads", Icon: "@", PostTypes: []string{"post"}},
		},
	}

	output := runCommand(t, "connections", "list")

	assert.Contains(t, output, "TikTok")
	assert.Contains(t, output, "connected")
	assert.Contains(t, output, "user_tiktok")
	assert.Contains(t, output, "disconnected")
}

func TestConnectionsDisconnectCmd(t *testing.T) {
	original := connectionService
	defer func() { connectionService = original }()

	stub := &stubConnectionService{}
	connectionService = stub

	output := runCommand(t, "connections", "disconnect", "tiktok")

	assert.Contains(t, output, "Disconnected tiktok")
	require.Len(t, stub.disconnected, 1)
	assert.Equal(t, domain.PlatformTikTok, stub.disconnected[0])
}

func TestConnectionsSetupCmd_PrintsGuide(t *testing.T) {
	original := connectionService
	originalSrv := callbackSrv
	defer func() {
		connectionService = original
		callbackSrv = originalSrv
	}()

	stub := &stubConnectionService{}
	connectionService = stub
	callbackSrv = callback.NewServer(0)

	output := runCommand(t, "connections", "setup", "youtube")

	assert.Contains(t, output, "Google Cloud")
	assert.Contains(t, output, "platform=youtube")
	// The guide is read-only; it must not start an authorization attempt.
	assert.Zero(t, stub.connectCalls)
}
