package domain

import "time"

// Connection is the persisted proof that a platform has been authorized.
// At most one Connection exists per platform id. Connections are replaced
// or deleted, never mutated in place.
type Connection struct {
	// Platform is the platform this connection belongs to.
	Platform PlatformID `json:"platform"`
	// AccessToken is an opaque token. With token exchange out of scope it
	// holds a mock value derived from the connection time.
	AccessToken string `json:"access_token"`
	// Username is the display identifier for the connected account.
	Username string `json:"username"`
	// Code echoes the authorization code received on the callback, kept for
	// traceability only.
	Code string `json:"code,omitempty"`
	// ConnectedAt is when the connection was created.
	ConnectedAt time.Time `json:"connected_at"`
	// AppID echoes the Meta application id used, when applicable.
	AppID string `json:"app_id,omitempty"`
	// ClientKey echoes the TikTok client key used, when applicable.
	ClientKey string `json:"client_key,omitempty"`
}

// IsAuthorized returns true if the connection carries a token.
func (c *Connection) IsAuthorized() bool {
	return c.AccessToken != ""
}
