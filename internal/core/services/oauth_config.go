package services

import (
	"fmt"
	"os"

	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
)

// Built-in provider credentials. The Meta application id is shared by the
// three Meta product surfaces; YouTube ships as a placeholder until the
// developer registers their own Google OAuth client.
const (
	metaAppID               = "880551427693768"
	tiktokClientKey         = "aw7sbxi93q5sl7gm"
	googleClientPlaceholder = "YOUR_GOOGLE_CLIENT_ID"
)

// Authorization endpoints per provider family.
const (
	metaAuthURL   = "https://www.facebook.com/v18.0/dialog/oauth"
	tiktokAuthURL = "https://www.tiktok.com/v2/auth/authorize"
	googleAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
)

// Environment variables that override the built-in client identifiers.
const (
	envMetaAppID     = "META_APP_ID"
	envTikTokKey     = "TIKTOK_CLIENT_KEY"
	envYouTubeClient = "YOUTUBE_CLIENT_ID"
)

// OAuthConfigResolver maps a platform to its provider's authorization
// contract. Resolution is total over the known platforms; unknown ids
// resolve to a zero config that callers must treat as "not configured".
type OAuthConfigResolver struct {
	config driven.ConfigStore
}

// NewOAuthConfigResolver creates a resolver. The config store is optional
// and supplies per-platform client id overrides.
func NewOAuthConfigResolver(config driven.ConfigStore) *OAuthConfigResolver {
	return &OAuthConfigResolver{config: config}
}

// Resolve returns the provider config for a platform, bound to the given
// callback origin. The redirect URI always carries the platform as a query
// parameter so a single callback endpoint can serve every provider.
func (r *OAuthConfigResolver) Resolve(platform domain.PlatformID, origin string) domain.OAuthProviderConfig {
	cfg := domain.OAuthProviderConfig{
		RedirectURI: fmt.Sprintf("%s?platform=%s", origin, platform),
	}

	switch platform {
	case domain.PlatformFacebook:
		cfg.ClientID = r.clientID(platform, envMetaAppID, metaAppID)
		cfg.AuthURL = metaAuthURL
		cfg.Scopes = []string{
			"pages_manage_posts",
			"pages_read_engagement",
			"instagram_basic",
			"instagram_content_publish",
		}
	case domain.PlatformInstagram:
		// Instagram authorizes through the Facebook dialog with the
		// same Meta application.
		cfg.ClientID = r.clientID(platform, envMetaAppID, metaAppID)
		cfg.AuthURL = metaAuthURL
		cfg.Scopes = []string{
			"instagram_basic",
			"instagram_content_publish",
			"pages_show_list",
			"instagram_manage_comments",
			"instagram_manage_insights",
		}
	case domain.PlatformThreads:
		// Threads rides the same Meta application as well.
		cfg.ClientID = r.clientID(platform, envMetaAppID, metaAppID)
		cfg.AuthURL = metaAuthURL
		cfg.Scopes = []string{
			"threads_basic",
			"threads_content_publish",
		}
	case domain.PlatformTikTok:
		cfg.ClientID = r.clientID(platform, envTikTokKey, tiktokClientKey)
		cfg.AuthURL = tiktokAuthURL
		cfg.Scopes = []string{
			"user.info.basic",
			"video.publish",
			"video.upload",
		}
	case domain.PlatformYouTube:
		cfg.ClientID = r.clientID(platform, envYouTubeClient, googleClientPlaceholder)
		cfg.AuthURL = googleAuthURL
		cfg.Scopes = []string{
			youtubeapi.YoutubeUploadScope,
			youtubeapi.YoutubeScope,
		}
	default:
		return domain.OAuthProviderConfig{}
	}

	return cfg
}

// clientID resolves a platform's client identifier. Precedence: config
// store, then environment, then the built-in default.
func (r *OAuthConfigResolver) clientID(platform domain.PlatformID, envVar, builtin string) string {
	if r.config != nil {
		if v := r.config.GetString(clientIDKey(platform)); v != "" {
			return v
		}
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return builtin
}

// clientIDKey is the config store key holding a platform's client id override.
func clientIDKey(platform domain.PlatformID) string {
	return fmt.Sprintf("oauth.%s.client_id", platform)
}
