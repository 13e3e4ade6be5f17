package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "crosspost-test-*")
	require.NoError(t, err)

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func testConnection(platform domain.PlatformID) domain.Connection {
	return domain.Connection{
		Platform:    platform,
		AccessToken: "mock_token_1717243200000",
		Username:    "user_" + platform.String(),
		Code:        "abc123",
		ConnectedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewStore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.Equal(t, "crosspost.db", filepath.Base(store.Path()))
	assert.FileExists(t, store.Path())
}

func TestNewStore_Reopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "crosspost-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.ConnectionStore().Save(ctx, testConnection(domain.PlatformTikTok)))
	require.NoError(t, store.Close())

	// Reopening runs migrations again without error and finds the data.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	conn, err := store.ConnectionStore().Get(ctx, domain.PlatformTikTok)
	require.NoError(t, err)
	assert.Equal(t, "user_tiktok", conn.Username)
}

func TestConnectionStore_SaveAndGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	conn := testConnection(domain.PlatformFacebook)
	conn.AppID = "880551427693768"
	require.NoError(t, store.ConnectionStore().Save(ctx, conn))

	got, err := store.ConnectionStore().Get(ctx, domain.PlatformFacebook)
	require.NoError(t, err)
	assert.Equal(t, conn.AccessToken, got.AccessToken)
	assert.Equal(t, conn.Username, got.Username)
	assert.Equal(t, conn.Code, got.Code)
	assert.Equal(t, conn.AppID, got.AppID)
	assert.Empty(t, got.ClientKey)
	assert.True(t, conn.ConnectedAt.Equal(got.ConnectedAt))
}

func TestConnectionStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.ConnectionStore().Get(context.Background(), domain.PlatformThreads)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConnectionStore_Save_Replaces(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := testConnection(domain.PlatformTikTok)
	require.NoError(t, store.ConnectionStore().Save(ctx, first))

	second := testConnection(domain.PlatformTikTok)
	second.AccessToken = "mock_token_9999"
	second.ClientKey = "aw7sbxi93q5sl7gm"
	require.NoError(t, store.ConnectionStore().Save(ctx, second))

	got, err := store.ConnectionStore().Get(ctx, domain.PlatformTikTok)
	require.NoError(t, err)
	assert.Equal(t, "mock_token_9999", got.AccessToken)
	assert.Equal(t, "aw7sbxi93q5sl7gm", got.ClientKey)

	all, err := store.ConnectionStore().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestConnectionStore_Remove(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.ConnectionStore().Save(ctx, testConnection(domain.PlatformYouTube)))
	require.NoError(t, store.ConnectionStore().Remove(ctx, domain.PlatformYouTube))

	_, err := store.ConnectionStore().Get(ctx, domain.PlatformYouTube)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Removing again is a no-op.
	assert.NoError(t, store.ConnectionStore().Remove(ctx, domain.PlatformYouTube))
}

func TestConnectionStore_List(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.ConnectionStore().Save(ctx, testConnection(domain.PlatformTikTok)))
	require.NoError(t, store.ConnectionStore().Save(ctx, testConnection(domain.PlatformInstagram)))

	all, err := store.ConnectionStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by platform.
	assert.Equal(t, domain.PlatformInstagram, all[0].Platform)
	assert.Equal(t, domain.PlatformTikTok, all[1].Platform)
}

func TestConnectionStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	all, err := store.ConnectionStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPendingAuthorizationStore_Take_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.PendingAuthorizationStore().Take(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingAuthorizationStore_PutTake(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	pending := domain.PendingAuthorization{
		State:     "tiktok_1717243200000",
		Platform:  domain.PlatformTikTok,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.PendingAuthorizationStore().Put(ctx, pending))

	got, err := store.PendingAuthorizationStore().Take(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending.State, got.State)
	assert.Equal(t, pending.Platform, got.Platform)
	assert.True(t, pending.CreatedAt.Equal(got.CreatedAt))

	// The slot is consumed.
	_, err = store.PendingAuthorizationStore().Take(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingAuthorizationStore_Put_Overwrites(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first := domain.PendingAuthorization{State: "tiktok_1", Platform: domain.PlatformTikTok, CreatedAt: time.Now()}
	second := domain.PendingAuthorization{State: "facebook_2", Platform: domain.PlatformFacebook, CreatedAt: time.Now()}

	require.NoError(t, store.PendingAuthorizationStore().Put(ctx, first))
	require.NoError(t, store.PendingAuthorizationStore().Put(ctx, second))

	got, err := store.PendingAuthorizationStore().Take(ctx)
	require.NoError(t, err)
	assert.Equal(t, "facebook_2", got.State)
	assert.Equal(t, domain.PlatformFacebook, got.Platform)
}

func TestPendingAuthorizationStore_SurvivesReopen(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "crosspost-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	store, err := NewStore(tempDir)
	require.NoError(t, err)

	ctx := context.Background()
	pending := domain.PendingAuthorization{State: "threads_3", Platform: domain.PlatformThreads, CreatedAt: time.Now()}
	require.NoError(t, store.PendingAuthorizationStore().Put(ctx, pending))
	require.NoError(t, store.Close())

	// The redirect round-trip is modelled as a cold restart.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.PendingAuthorizationStore().Take(ctx)
	require.NoError(t, err)
	assert.Equal(t, "threads_3", got.State)
}
