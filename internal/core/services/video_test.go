package services

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

// fakeProbe reports fixed metadata for every file.
type fakeProbe struct {
	duration time.Duration
	width    int
	height   int
}

func (f *fakeProbe) Probe(_ context.Context, path string) (*domain.Video, error) {
	return &domain.Video{Path: path, Duration: f.duration, Width: f.width, Height: f.height}, nil
}

func writeTempVideo(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestVideoService_Import(t *testing.T) {
	svc := NewVideoService(&fakeProbe{duration: 45 * time.Second, width: 1080, height: 1920})
	path := writeTempVideo(t, "clip.mp4", 2048)

	video, err := svc.Import(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, video.Path)
	assert.Equal(t, int64(2048), video.Size)
	assert.Equal(t, 45*time.Second, video.Duration)
	assert.True(t, video.Portrait())
}

func TestVideoService_Import_NoProbe(t *testing.T) {
	svc := NewVideoService(nil)
	path := writeTempVideo(t, "clip.mov", 128)

	video, err := svc.Import(context.Background(), path)
	require.NoError(t, err)

	// Without a probe the clip imports with unverified metadata.
	assert.Zero(t, video.Duration)
	assert.Zero(t, video.Width)
}

func TestVideoService_Import_UnsupportedExtension(t *testing.T) {
	svc := NewVideoService(nil)
	path := writeTempVideo(t, "notes.txt", 16)

	_, err := svc.Import(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrVideoUnsupported)
}

func TestVideoService_Import_TooLong(t *testing.T) {
	svc := NewVideoService(&fakeProbe{duration: 2 * time.Minute})
	path := writeTempVideo(t, "clip.mp4", 128)

	_, err := svc.Import(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrVideoTooLong)
}

func TestVideoService_Import_MissingFile(t *testing.T) {
	svc := NewVideoService(nil)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "absent.mp4"))
	assert.Error(t, err)
}
