// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The connection lifecycle lives here: resolving provider configuration,
// building authorization URLs, verifying callbacks and maintaining the
// stored connections.
package services
