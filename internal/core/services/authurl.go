package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// BuildAuthorizationURL assembles the provider consent URL for a platform.
//
// Each provider family expects its own parameter names, ordering and scope
// join. The query string is assembled by hand because the Meta and TikTok
// dialogs receive their comma-joined scope lists unencoded, which a generic
// encoder would not preserve.
func BuildAuthorizationURL(cfg domain.OAuthProviderConfig, platform domain.PlatformID, state string) (string, error) {
	if !cfg.IsConfigured() {
		return "", fmt.Errorf("%w: %s", domain.ErrProviderNotConfigured, platform)
	}

	switch platform {
	case domain.PlatformFacebook, domain.PlatformInstagram, domain.PlatformThreads:
		return cfg.AuthURL + "?" +
			"client_id=" + cfg.ClientID +
			"&redirect_uri=" + url.QueryEscape(cfg.RedirectURI) +
			"&scope=" + strings.Join(cfg.Scopes, ",") +
			"&response_type=code" +
			"&state=" + state, nil

	case domain.PlatformTikTok:
		return cfg.AuthURL + "?" +
			"client_key=" + cfg.ClientID +
			"&scope=" + strings.Join(cfg.Scopes, ",") +
			"&response_type=code" +
			"&redirect_uri=" + url.QueryEscape(cfg.RedirectURI) +
			"&state=" + state, nil

	case domain.PlatformYouTube:
		return cfg.AuthURL + "?" +
			"client_id=" + cfg.ClientID +
			"&redirect_uri=" + url.QueryEscape(cfg.RedirectURI) +
			"&response_type=code" +
			"&scope=" + url.QueryEscape(strings.Join(cfg.Scopes, " ")) +
			"&access_type=offline" +
			"&prompt=consent" +
			"&state=" + state, nil

	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}
}
