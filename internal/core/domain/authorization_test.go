package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewAuthState_Format(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	state := NewAuthState(PlatformTikTok, now)

	assert.Equal(t, fmt.Sprintf("tiktok_%d", now.UnixMilli()), state)
}

func TestNewAuthState_UniquePerAttempt(t *testing.T) {
	base := time.Now()

	first := NewAuthState(PlatformFacebook, base)
	second := NewAuthState(PlatformFacebook, base.Add(time.Millisecond))

	assert.NotEqual(t, first, second)
}

func TestPendingAuthorization_Matches(t *testing.T) {
	pending := PendingAuthorization{
		State:    "tiktok_12345",
		Platform: PlatformTikTok,
	}

	assert.True(t, pending.Matches(PlatformTikTok, "tiktok_12345"))
	assert.False(t, pending.Matches(PlatformTikTok, "tiktok_99999"), "state must match exactly")
	assert.False(t, pending.Matches(PlatformInstagram, "tiktok_12345"), "platform must match")
}
