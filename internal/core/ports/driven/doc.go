// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConnectionStore: Platform connection persistence
//   - PendingAuthorizationStore: In-flight authorization state
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Publisher: Platform delivery. Without it, publishing is disabled.
//   - CaptionGenerator: Caption suggestions. Without it, captions are manual.
//   - VideoProbe: Container inspection. Without it, clips import unverified.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
