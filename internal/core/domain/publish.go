package domain

import "time"

// ScheduleMode selects when a cross-post goes out.
type ScheduleMode string

const (
	// ScheduleNow posts immediately.
	ScheduleNow ScheduleMode = "now"
	// ScheduleLater posts at a clock time later today.
	ScheduleLater ScheduleMode = "later"
)

// PlatformSelection is one platform chosen for a cross-post, with its post
// type and caption.
type PlatformSelection struct {
	Platform PlatformID `json:"platform" validate:"required"`
	// PostType must be one of the platform's supported post types.
	PostType string `json:"post_type" validate:"required"`
	Caption  string `json:"caption"`
}

// PublishRequest describes one cross-post across a set of platforms.
type PublishRequest struct {
	Selections []PlatformSelection `json:"selections" validate:"required,min=1,dive"`
	Schedule   ScheduleMode        `json:"schedule" validate:"required,oneof=now later"`
	// At is the HH:MM clock time for ScheduleLater, ignored otherwise.
	At string `json:"at,omitempty" validate:"required_if=Schedule later,omitempty,datetime=15:04"`
}

// PostResult records one simulated post.
type PostResult struct {
	// ID is the generated post identifier.
	ID string `json:"id"`
	// Platform is where the post went.
	Platform PlatformID `json:"platform"`
	// PostType is the content kind that was posted.
	PostType string `json:"post_type"`
	// Username is the account the post went out under.
	Username string `json:"username"`
	// ScheduledAt is when the post goes (or went) out.
	ScheduledAt time.Time `json:"scheduled_at"`
}
