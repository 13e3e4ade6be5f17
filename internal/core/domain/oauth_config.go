package domain

import "strings"

// placeholderPrefix marks a client id that has not been configured yet.
// Connect attempts against a placeholder divert to setup guidance instead
// of building an authorization URL.
const placeholderPrefix = "YOUR_"

// OAuthProviderConfig describes one provider's authorization contract.
// It is derived on demand from the platform id and the current origin,
// never persisted.
type OAuthProviderConfig struct {
	// ClientID is the OAuth client identifier (client key for TikTok).
	ClientID string `json:"client_id"`
	// AuthURL is the provider's authorization endpoint.
	AuthURL string `json:"auth_url"`
	// RedirectURI is the same-origin callback, carrying the platform id as
	// a query parameter: {origin}?platform={id}.
	RedirectURI string `json:"redirect_uri"`
	// Scopes are the permissions requested, in order. The join character is
	// provider-specific and applied by the URL builder.
	Scopes []string `json:"scopes"`
}

// IsConfigured returns true when the client id is present and is not a
// placeholder. Callers must check this before building an authorization URL.
func (c *OAuthProviderConfig) IsConfigured() bool {
	return c.ClientID != "" && !strings.HasPrefix(c.ClientID, placeholderPrefix)
}

// IsZero returns true for the empty config returned for unknown platforms.
func (c *OAuthProviderConfig) IsZero() bool {
	return c.ClientID == "" && c.AuthURL == "" && len(c.Scopes) == 0
}
