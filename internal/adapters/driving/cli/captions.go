package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
)

var captionsCmd = &cobra.Command{
	Use:   "captions [video]",
	Short: "Generate caption suggestions for a video",
	Long: `Generate a platform-tailored caption for each requested platform.

Examples:
  crosspost captions clip.mp4
  crosspost captions clip.mp4 --platforms tiktok,youtube`,
	Args: cobra.ExactArgs(1),
	RunE: runCaptions,
}

var captionsPlatforms []string

func init() {
	captionsCmd.Flags().StringSliceVar(&captionsPlatforms, "platforms", nil, "Platforms to caption for (default: all)")
	rootCmd.AddCommand(captionsCmd)
}

func runCaptions(cmd *cobra.Command, args []string) error {
	if videoService == nil || captionService == nil {
		return errors.New("caption service not configured")
	}

	ctx := context.Background()
	video, err := videoService.Import(ctx, args[0])
	if err != nil {
		return err
	}

	var platforms []domain.PlatformID
	if len(captionsPlatforms) == 0 {
		platforms = domain.AllPlatformIDs
	} else {
		for _, raw := range captionsPlatforms {
			id := domain.PlatformID(strings.TrimSpace(raw))
			if !id.Valid() {
				return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, id)
			}
			platforms = append(platforms, id)
		}
	}

	captions, err := captionService.Generate(ctx, *video, platforms)
	if err != nil {
		return err
	}

	for _, c := range captions {
		cmd.Printf("%s:\n  %s\n", c.Platform, c.Text)
	}
	return nil
}
