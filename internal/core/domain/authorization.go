package domain

import (
	"fmt"
	"time"
)

// PendingAuthorization is the transient anti-forgery record bridging an
// outbound authorization redirect and its return callback. Exactly one may
// exist at a time: a second connect attempt overwrites the first, and the
// record is consumed (read once, then cleared) by callback verification
// whether verification succeeds or fails.
type PendingAuthorization struct {
	// State is the anti-forgery token sent to the provider.
	State string `json:"state"`
	// Platform is the platform id this state was issued for.
	Platform PlatformID `json:"platform"`
	// CreatedAt is when the authorization attempt started.
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthState builds a state token for an authorization attempt.
// The format is <platformID>_<creationTimestampMillis>, unique per attempt.
func NewAuthState(platform PlatformID, now time.Time) string {
	return fmt.Sprintf("%s_%d", platform, now.UnixMilli())
}

// Matches reports whether the callback's state and platform equal the
// values this record was issued with.
func (p *PendingAuthorization) Matches(platform PlatformID, state string) bool {
	return p.Platform == platform && p.State == state
}
