// Package cli implements the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/captions"
	configfile "github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/config/file"
	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/intake"
	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/publish"
	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driven/storage/sqlite"
	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/callback"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driving"
	"github.com/crosspost-labs/crosspost-cli/internal/core/services"
	"github.com/crosspost-labs/crosspost-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagDataDir   string
	flagConfigDir string
)

// Services wired in Execute and shared by all commands.
var (
	configStore       driven.ConfigStore
	store             *sqlite.Store
	callbackSrv       *callback.Server
	connectionService driving.ConnectionService
	captionService    driving.CaptionService
	publishService    driving.PublishService
	videoService      driving.VideoService
)

var rootCmd = &cobra.Command{
	Use:   "crosspost",
	Short: "Cross-post short videos to social platforms",
	Long: `CrossPost publishes a short video to TikTok, Instagram, Facebook,
YouTube and Threads from one place.

Connect each platform once over OAuth, then import a clip, generate
per-platform captions and publish everywhere in one command.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default ~/.crosspost/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default ~/.crosspost)")
}

// initServices wires the adapters and services behind the commands.
func initServices() error {
	// A .env in the working directory can carry client id overrides.
	_ = godotenv.Load()

	var err error
	configStore, err = configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err = sqlite.NewStore(flagDataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	callbackSrv = callback.NewServer(0)

	resolver := services.NewOAuthConfigResolver(configStore)
	connectionService = services.NewConnectionService(
		resolver,
		store.ConnectionStore(),
		store.PendingAuthorizationStore(),
		callbackSrv.Origin,
	)
	captionService = services.NewCaptionService(captions.NewTemplateGenerator())
	publishService = services.NewPublishService(publish.NewSimulatedPublisher(), store.ConnectionStore())
	videoService = services.NewVideoService(intake.NewMP4Probe())

	return nil
}

// Execute wires the services and runs the root command.
func Execute() {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
