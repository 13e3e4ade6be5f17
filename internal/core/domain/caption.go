package domain

// Caption is one platform-targeted caption text.
type Caption struct {
	// Platform is the platform the caption was written for.
	Platform PlatformID `json:"platform"`
	// Text is the caption body, including any hashtags.
	Text string `json:"text"`
}
