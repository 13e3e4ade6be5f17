package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

// ListPlatformsInput is the input schema for the list_platforms tool.
type ListPlatformsInput struct {
	ConnectedOnly bool `json:"connected_only,omitempty" jsonschema:"only return platforms with an active connection"`
}

// ListPlatformsOutput is the output schema for the list_platforms tool.
type ListPlatformsOutput struct {
	Platforms []PlatformOutput `json:"platforms"`
	Count     int              `json:"count"`
}

// PlatformOutput represents a single platform with its connection status.
type PlatformOutput struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Connected bool     `json:"connected"`
	Username  string   `json:"username,omitempty"`
	PostTypes []string `json:"post_types"`
}

// GenerateCaptionsInput is the input schema for the generate_captions tool.
type GenerateCaptionsInput struct {
	Video     string   `json:"video" jsonschema:"path of the video file to caption"`
	Platforms []string `json:"platforms,omitempty" jsonschema:"platform ids to caption for (default all)"`
}

// GenerateCaptionsOutput is the output schema for the generate_captions tool.
type GenerateCaptionsOutput struct {
	Captions []CaptionOutput `json:"captions"`
}

// CaptionOutput is one platform-targeted caption.
type CaptionOutput struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
}

// PublishInput is the input schema for the publish tool.
type PublishInput struct {
	Video     string   `json:"video" jsonschema:"path of the video file to post"`
	Platforms []string `json:"platforms" jsonschema:"platform ids to post to"`
	Caption   string   `json:"caption,omitempty" jsonschema:"caption for every platform"`
	PostType  string   `json:"post_type,omitempty" jsonschema:"post type (defaults to each platform's first)"`
	Schedule  string   `json:"schedule,omitempty" jsonschema:"now or later (default now)"`
	At        string   `json:"at,omitempty" jsonschema:"clock time HH:MM when schedule is later"`
}

// PublishOutput is the output schema for the publish tool.
type PublishOutput struct {
	Posts []PostOutput `json:"posts"`
	Count int          `json:"count"`
}

// PostOutput records one delivered post.
type PostOutput struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	PostType    string `json:"post_type"`
	Username    string `json:"username"`
	ScheduledAt string `json:"scheduled_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_platforms",
		Description: "List the supported platforms and their connection status",
	}, s.handleListPlatforms)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_captions",
		Description: "Generate a platform-tailored caption for each platform",
	}, s.handleGenerateCaptions)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "publish",
		Description: "Cross-post a video to the connected platforms",
	}, s.handlePublish)
}

// handleListPlatforms handles the list_platforms tool invocation.
func (s *Server) handleListPlatforms(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListPlatformsInput,
) (*mcp.CallToolResult, ListPlatformsOutput, error) {
	platforms, err := s.ports.Connections.Platforms(ctx)
	if err != nil {
		return nil, ListPlatformsOutput{}, err
	}

	output := ListPlatformsOutput{Platforms: []PlatformOutput{}}
	for i := range platforms {
		if input.ConnectedOnly && !platforms[i].Connected {
			continue
		}
		output.Platforms = append(output.Platforms, PlatformOutput{
			ID:        string(platforms[i].ID),
			Name:      platforms[i].Name,
			Connected: platforms[i].Connected,
			Username:  platforms[i].Username,
			PostTypes: platforms[i].PostTypes,
		})
	}
	output.Count = len(output.Platforms)

	return nil, output, nil
}

// handleGenerateCaptions handles the generate_captions tool invocation.
func (s *Server) handleGenerateCaptions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateCaptionsInput,
) (*mcp.CallToolResult, GenerateCaptionsOutput, error) {
	if s.ports.Captions == nil || s.ports.Video == nil {
		return nil, GenerateCaptionsOutput{}, errors.New("caption generation is not available")
	}

	video, err := s.ports.Video.Import(ctx, input.Video)
	if err != nil {
		return nil, GenerateCaptionsOutput{}, err
	}

	platforms, err := platformIDs(input.Platforms)
	if err != nil {
		return nil, GenerateCaptionsOutput{}, err
	}
	if len(platforms) == 0 {
		platforms = domain.AllPlatformIDs
	}

	captions, err := s.ports.Captions.Generate(ctx, *video, platforms)
	if err != nil {
		return nil, GenerateCaptionsOutput{}, err
	}

	output := GenerateCaptionsOutput{Captions: make([]CaptionOutput, len(captions))}
	for i, c := range captions {
		output.Captions[i] = CaptionOutput{Platform: string(c.Platform), Text: c.Text}
	}

	return nil, output, nil
}

// handlePublish handles the publish tool invocation.
func (s *Server) handlePublish(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PublishInput,
) (*mcp.CallToolResult, PublishOutput, error) {
	if s.ports.Publish == nil || s.ports.Video == nil {
		return nil, PublishOutput{}, errors.New("publishing is not available")
	}

	video, err := s.ports.Video.Import(ctx, input.Video)
	if err != nil {
		return nil, PublishOutput{}, err
	}

	platforms, err := platformIDs(input.Platforms)
	if err != nil {
		return nil, PublishOutput{}, err
	}

	schedule := domain.ScheduleMode(input.Schedule)
	if schedule == "" {
		schedule = domain.ScheduleNow
	}

	req := domain.PublishRequest{Schedule: schedule, At: input.At}
	for _, id := range platforms {
		postType := input.PostType
		if postType == "" {
			postType = defaultPostType(id)
		}
		req.Selections = append(req.Selections, domain.PlatformSelection{
			Platform: id,
			PostType: postType,
			Caption:  input.Caption,
		})
	}

	results, err := s.ports.Publish.Publish(ctx, *video, req)
	if err != nil {
		return nil, PublishOutput{}, err
	}

	output := PublishOutput{Posts: make([]PostOutput, len(results)), Count: len(results)}
	for i, r := range results {
		output.Posts[i] = PostOutput{
			ID:          r.ID,
			Platform:    string(r.Platform),
			PostType:    r.PostType,
			Username:    r.Username,
			ScheduledAt: r.ScheduledAt.Format(time.RFC3339),
		}
	}

	return nil, output, nil
}

func platformIDs(raw []string) ([]domain.PlatformID, error) {
	ids := make([]domain.PlatformID, 0, len(raw))
	for _, r := range raw {
		id := domain.PlatformID(r)
		if !id.Valid() {
			return nil, domain.ErrUnsupportedPlatform
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func defaultPostType(id domain.PlatformID) string {
	for _, p := range domain.DefaultPlatforms() {
		if p.ID == id {
			return p.DefaultPostType()
		}
	}
	return ""
}
