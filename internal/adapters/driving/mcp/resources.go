package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for CrossPost resources.
	uriScheme = "crosspost://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing platforms.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "platforms",
		Name:        "platforms",
		Description: "List of all supported platforms with connection status",
		MIMEType:    "application/json",
	}, s.handlePlatformsResource)

	// Template for a single platform connection.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "connections/{platform}",
		Name:        "connection",
		Description: "Connection details for a specific platform",
		MIMEType:    "application/json",
	}, s.handleConnectionResource)
}

// handlePlatformsResource returns the platform list with connection status.
func (s *Server) handlePlatformsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	platforms, err := s.ports.Connections.Platforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing platforms: %w", err)
	}

	data, err := json.MarshalIndent(platforms, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling platforms: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleConnectionResource returns the connection for a specific platform.
// The access token is redacted.
func (s *Server) handleConnectionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	platform := extractPlatform(req.Params.URI)
	if !platform.Valid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	conn, err := s.ports.Connections.Connection(ctx, platform)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	type connectionInfo struct {
		Platform    string `json:"platform"`
		Username    string `json:"username"`
		ConnectedAt string `json:"connected_at"`
	}

	info := connectionInfo{
		Platform:    string(conn.Platform),
		Username:    conn.Username,
		ConnectedAt: conn.ConnectedAt.Format("2006-01-02 15:04"),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling connection: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPlatform extracts the platform id from a URI like crosspost://connections/{platform}.
func extractPlatform(uri string) domain.PlatformID {
	const prefix = uriScheme + "connections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return domain.PlatformID(strings.TrimPrefix(uri, prefix))
}
