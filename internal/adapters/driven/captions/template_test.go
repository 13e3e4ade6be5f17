package captions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

func TestTemplateGenerator_Generate(t *testing.T) {
	gen := NewTemplateGenerator()

	for _, id := range domain.AllPlatformIDs {
		t.Run(id.String(), func(t *testing.T) {
			text, err := gen.Generate(context.Background(), id, domain.Video{})
			require.NoError(t, err)
			assert.NotEmpty(t, text)
		})
	}
}

func TestTemplateGenerator_Generate_PlatformVoice(t *testing.T) {
	gen := NewTemplateGenerator()

	tiktok, err := gen.Generate(context.Background(), domain.PlatformTikTok, domain.Video{})
	require.NoError(t, err)
	assert.Contains(t, tiktok, "#fyp")

	youtube, err := gen.Generate(context.Background(), domain.PlatformYouTube, domain.Video{})
	require.NoError(t, err)
	assert.NotContains(t, youtube, "#")
}

func TestTemplateGenerator_Generate_Unknown(t *testing.T) {
	gen := NewTemplateGenerator()

	_, err := gen.Generate(context.Background(), "myspace", domain.Video{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
}
