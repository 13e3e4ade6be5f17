// Package mcp provides an MCP (Model Context Protocol) server adapter for CrossPost.
// It enables AI assistants like Claude to drive the cross-posting workflow.
package mcp

import "errors"

// ErrMissingConnectionService is returned when the connection service is not provided.
var ErrMissingConnectionService = errors.New("mcp: connection service is required")
