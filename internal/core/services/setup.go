package services

import (
	"fmt"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// setupGuideFor returns the developer setup walkthrough for a platform whose
// provider has no usable client id yet.
func setupGuideFor(platform domain.PlatformID, redirectURI string) *domain.SetupGuide {
	guide := &domain.SetupGuide{
		Platform:    platform,
		Intro:       fmt.Sprintf("To connect %s, you need to set up OAuth credentials.", platform),
		RedirectURI: redirectURI,
	}

	switch platform {
	case domain.PlatformFacebook:
		guide.Steps = []domain.SetupStep{
			{Title: "Create Facebook App", Detail: "Register an application with Meta for Developers.", URL: "https://developers.facebook.com/apps/create/"},
			{Title: "Configure OAuth Settings", Detail: "Add the redirect URI below to your app's valid OAuth redirect URIs."},
			{Title: "Request Permissions", Detail: "pages_manage_posts, pages_read_engagement, instagram_basic, instagram_content_publish."},
			{Title: "Get Your Credentials", Detail: "Copy the App ID and App Secret from the app dashboard."},
		}
		guide.EnvVars = []string{"META_APP_ID"}
	case domain.PlatformInstagram:
		guide.Steps = []domain.SetupStep{
			{Title: "Complete Facebook Setup First", Detail: "Instagram authorizes through the same Meta application."},
			{Title: "Check Account Requirements", Detail: "You need an Instagram Business Account linked to a Facebook Page.", URL: "https://developers.facebook.com/docs/instagram-api/getting-started"},
		}
		guide.EnvVars = []string{"META_APP_ID"}
	case domain.PlatformTikTok:
		guide.Steps = []domain.SetupStep{
			{Title: "Register TikTok Developer Account", URL: "https://developers.tiktok.com"},
			{Title: "Create App and Request Permissions", Detail: "The Content Posting API requires approval; apply at the developer portal."},
			{Title: "Whitelist the Redirect URI", Detail: "Add the redirect URI below to your app settings."},
		}
		guide.EnvVars = []string{"TIKTOK_CLIENT_KEY", "TIKTOK_CLIENT_SECRET"}
	case domain.PlatformYouTube:
		guide.Steps = []domain.SetupStep{
			{Title: "Create Google Cloud Project", URL: "https://console.cloud.google.com"},
			{Title: "Enable YouTube Data API v3", Detail: "APIs & Services, Enable APIs and Services, search for \"YouTube Data API v3\"."},
			{Title: "Create OAuth 2.0 Credentials", Detail: "Add the redirect URI below as an authorized redirect URI."},
		}
		guide.EnvVars = []string{"YOUTUBE_CLIENT_ID", "YOUTUBE_CLIENT_SECRET"}
	case domain.PlatformThreads:
		guide.Steps = []domain.SetupStep{
			{Title: "Request Threads API Access", Detail: "The Threads API is in limited beta; you may need to request access.", URL: "https://developers.facebook.com/docs/threads"},
			{Title: "Reuse Your Meta App", Detail: "Threads uses Meta's OAuth system; add Threads permissions to your Meta application."},
		}
		guide.EnvVars = []string{"META_APP_ID"}
	}

	return guide
}
