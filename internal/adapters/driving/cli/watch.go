package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/intake"
	"github.com/crosspost-labs/crosspost-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and import new videos as they appear",
	Long: `Watch a directory for new video files. Every new mp4, mov or webm is
run through intake validation and its metadata printed. Stop with Ctrl+C.

Examples:
  crosspost watch ~/Videos/drops`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if videoService == nil {
		return errors.New("video service not configured")
	}

	watcher, err := intake.NewWatcher(args[0])
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for new videos...\n", args[0])
	err = watcher.Run(ctx, func(path string) {
		video, err := videoService.Import(ctx, path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return
		}
		printVideoSummary(cmd, video)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
