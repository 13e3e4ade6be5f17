// Package captions provides caption generation adapters.
package captions

import (
	"context"
	"fmt"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
)

// Ensure TemplateGenerator implements the interface.
var _ driven.CaptionGenerator = (*TemplateGenerator)(nil)

// templates holds one canned caption per platform, styled for that surface.
var templates = map[domain.PlatformID]string{
	domain.PlatformTikTok:    "🔥 Check this out! Amazing content coming your way! #viral #trending #fyp #foryoupage",
	domain.PlatformInstagram: "✨ New video alert! Swipe to see more 👉 #instagood #reels #explore #viral",
	domain.PlatformFacebook:  "Watch this amazing video! Share with friends who need to see this. 🎥 Tag someone!",
	domain.PlatformYouTube:   "Incredible Video You Need to Watch | Full Tutorial & Tips",
	domain.PlatformThreads:   "Just dropped something amazing 👀 What do you think? Let me know below!",
}

// TemplateGenerator produces captions from per-platform templates. It stands
// in for a real language model behind the same port.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a template-based caption generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate returns the platform's template caption.
func (g *TemplateGenerator) Generate(_ context.Context, platform domain.PlatformID, _ domain.Video) (string, error) {
	text, ok := templates[platform]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
	return text, nil
}
