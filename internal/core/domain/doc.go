// Package domain defines the core business entities for CrossPost.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Platform: A social destination the app can post to
//   - Connection: Persisted proof that a platform is authorized
//   - PendingAuthorization: Anti-forgery state bridging the OAuth redirect
//   - Video: An imported clip with its probed metadata
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
