package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

var publishCmd = &cobra.Command{
	Use:   "publish [video]",
	Short: "Cross-post a video to the connected platforms",
	Long: `Import a video and post it to one or more connected platforms.

Captions can be given once for all platforms or generated per platform
with --auto-captions. Scheduling "later" posts at the next occurrence of
the given HH:MM clock time.

Examples:
  crosspost publish clip.mp4 --platforms tiktok,instagram
  crosspost publish clip.mp4 --platforms youtube --post-type shorts --caption "New drop"
  crosspost publish clip.mp4 --platforms tiktok --auto-captions
  crosspost publish clip.mp4 --platforms instagram --schedule later --at 18:30`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

var (
	publishPlatforms    []string
	publishCaption      string
	publishAutoCaptions bool
	publishPostType     string
	publishSchedule     string
	publishAt           string
)

func init() {
	publishCmd.Flags().StringSliceVar(&publishPlatforms, "platforms", nil, "Platforms to post to (comma separated)")
	publishCmd.Flags().StringVar(&publishCaption, "caption", "", "Caption for every platform")
	publishCmd.Flags().BoolVar(&publishAutoCaptions, "auto-captions", false, "Generate a caption per platform")
	publishCmd.Flags().StringVar(&publishPostType, "post-type", "", "Post type (defaults to each platform's first)")
	publishCmd.Flags().StringVar(&publishSchedule, "schedule", "now", "When to post: now or later")
	publishCmd.Flags().StringVar(&publishAt, "at", "", "Clock time HH:MM for --schedule later")
	_ = publishCmd.MarkFlagRequired("platforms")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	if videoService == nil || publishService == nil {
		return errors.New("publish service not configured")
	}

	ctx := context.Background()

	video, err := videoService.Import(ctx, args[0])
	if err != nil {
		return err
	}
	printVideoSummary(cmd, video)

	platforms := make([]domain.PlatformID, 0, len(publishPlatforms))
	for _, raw := range publishPlatforms {
		id := domain.PlatformID(strings.TrimSpace(raw))
		if !id.Valid() {
			return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, id)
		}
		platforms = append(platforms, id)
	}

	captions := map[domain.PlatformID]string{}
	if publishAutoCaptions {
		if captionService == nil {
			return errors.New("caption service not configured")
		}
		generated, err := captionService.Generate(ctx, *video, platforms)
		if err != nil {
			return err
		}
		for _, c := range generated {
			captions[c.Platform] = c.Text
		}
	}

	req := domain.PublishRequest{
		Schedule: domain.ScheduleMode(publishSchedule),
		At:       publishAt,
	}
	for _, id := range platforms {
		caption := publishCaption
		if text, ok := captions[id]; ok {
			caption = text
		}
		req.Selections = append(req.Selections, domain.PlatformSelection{
			Platform: id,
			PostType: postTypeFor(id),
			Caption:  caption,
		})
	}

	results, err := publishService.Publish(ctx, *video, req)
	for _, r := range results {
		cmd.Printf("Posted %s to %s as %s (scheduled %s, id %s)\n",
			r.PostType, r.Platform, r.Username, r.ScheduledAt.Format("15:04"), r.ID)
	}
	return err
}

// postTypeFor picks the requested post type, falling back to the platform
// default when the flag is unset.
func postTypeFor(id domain.PlatformID) string {
	if publishPostType != "" {
		return publishPostType
	}
	for _, p := range domain.DefaultPlatforms() {
		if p.ID == id {
			return p.DefaultPostType()
		}
	}
	return ""
}

func printVideoSummary(cmd *cobra.Command, video *domain.Video) {
	cmd.Printf("Imported %s (%.1f MB", video.Path, float64(video.Size)/(1024*1024))
	if video.Duration > 0 {
		cmd.Printf(", %.0fs", video.Duration.Seconds())
	}
	if video.Width > 0 && video.Height > 0 {
		orientation := "landscape"
		if video.Portrait() {
			orientation = "portrait"
		}
		cmd.Printf(", %dx%d %s", video.Width, video.Height, orientation)
	}
	cmd.Println(")")
}
