package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [video]",
	Short: "Validate a video and print its metadata",
	Long: `Check a video against the intake limits (mp4, mov or webm, at most
500MB and 90 seconds) and print the probed metadata.

Examples:
  crosspost import clip.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if videoService == nil {
		return errors.New("video service not configured")
	}

	video, err := videoService.Import(context.Background(), args[0])
	if err != nil {
		return err
	}
	printVideoSummary(cmd, video)
	return nil
}
