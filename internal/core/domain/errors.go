package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Connection lifecycle errors.

	// ErrUnsupportedPlatform indicates a platform id outside the fixed set.
	// Unreachable through the CLI, which validates ids up front; treated as
	// a configuration bug when it surfaces.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrProviderNotConfigured indicates the platform's client id is a
	// placeholder. Recoverable: surfaced as setup instructions.
	ErrProviderNotConfigured = errors.New("provider not configured")

	// ErrMissingPendingAuthorization indicates a callback arrived with no
	// pending authorization to verify against.
	ErrMissingPendingAuthorization = errors.New("no pending authorization")

	// ErrStateMismatch indicates the callback's state or platform did not
	// match the pending authorization.
	ErrStateMismatch = errors.New("authorization state mismatch")

	// Publish errors.

	// ErrNotConnected indicates a selected platform has no connection.
	ErrNotConnected = errors.New("platform not connected")

	// ErrUnsupportedPostType indicates a post type the platform does not offer.
	ErrUnsupportedPostType = errors.New("unsupported post type")

	// Video intake errors.

	// ErrVideoUnsupported indicates the file is not a recognised video container.
	ErrVideoUnsupported = errors.New("unsupported video file")

	// ErrVideoTooLarge indicates the file exceeds the size limit.
	ErrVideoTooLarge = errors.New("video file too large")

	// ErrVideoTooLong indicates the clip exceeds the duration limit.
	ErrVideoTooLong = errors.New("video too long")
)
