package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/tui/messages"
	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

func newTestPorts() *Ports {
	connected := domain.DefaultPlatforms()
	for i := range connected {
		connected[i].Connected = true
		connected[i].Username = "user_" + string(connected[i].ID)
	}

	return &Ports{
		Connections: &MockConnectionService{
			PlatformsFunc: func(_ context.Context) ([]domain.Platform, error) {
				return connected, nil
			},
		},
		Captions: &MockCaptionService{},
		Publish:  &MockPublishService{},
		Video:    &MockVideoService{},
	}
}

// advance pushes the app through the upload step with an imported clip.
func advanceToEdit(t *testing.T, app *App) {
	t.Helper()
	model, _ := app.Update(messages.PlatformsLoaded{Platforms: mustPlatforms(app)})
	model, _ = model.Update(messages.VideoImported{
		Video: &domain.Video{Path: "clip.mp4", Size: 1024, Duration: 30 * time.Second},
	})
	require.Equal(t, messages.StepEdit, model.(*App).step)
}

func mustPlatforms(app *App) []domain.Platform {
	platforms, _ := app.ports.Connections.Platforms(context.Background())
	return platforms
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.StepUpload, app.step)
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	updated := model.(*App)
	assert.Equal(t, 80, updated.width)
	assert.Equal(t, 24, updated.height)
}

func TestApp_ImportFailureStaysOnUpload(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	model, _ := app.Update(messages.VideoImported{Err: domain.ErrVideoTooLong})

	updated := model.(*App)
	assert.Equal(t, messages.StepUpload, updated.step)
	assert.ErrorIs(t, updated.err, domain.ErrVideoTooLong)
}

func TestApp_ImportAdvancesToEdit(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	advanceToEdit(t, app)

	assert.NotNil(t, app.video)
	assert.Contains(t, app.View(), "clip.mp4")
}

func TestApp_SelectAndPublish(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	advanceToEdit(t, app)

	// Toggle the first platform and publish.
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	updated := model.(*App)
	assert.Equal(t, messages.StepPublish, updated.step)
	assert.NotNil(t, cmd)
}

func TestApp_PublishWithoutSelectionKeepsEditing(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	advanceToEdit(t, app)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	updated := model.(*App)
	assert.Equal(t, messages.StepEdit, updated.step)
	assert.Error(t, updated.err)
}

func TestApp_PublishedShowsResults(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	advanceToEdit(t, app)

	model, _ := app.Update(messages.Published{
		Results: []domain.PostResult{
			{ID: "post-1", Platform: domain.PlatformTikTok, PostType: "video", Username: "user_tiktok"},
		},
	})

	updated := model.(*App)
	assert.Equal(t, messages.StepDone, updated.step)
	assert.Contains(t, updated.View(), "post-1")
}

func TestApp_QuitFromDone(t *testing.T) {
	app, _ := NewApp(newTestPorts())
	app.step = messages.StepDone

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
