package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/callback"
	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/services"
)

// callbackTimeout is how long connect waits for the provider redirect.
const callbackTimeout = 5 * time.Minute

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Manage platform connections",
	Long: `Connect, inspect and disconnect social platform accounts.

Each platform is authorized once over OAuth. The consent page opens in
your browser and the provider redirects back to a local callback server.

Examples:
  crosspost connections list
  crosspost connections connect tiktok
  crosspost connections disconnect tiktok
  crosspost connections setup youtube --save`,
}

var connectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List platforms and their connection status",
	RunE:  runConnectionsList,
}

var connectionsConnectCmd = &cobra.Command{
	Use:   "connect [platform]",
	Short: "Authorize a platform over OAuth",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnectionsConnect,
}

var connectionsDisconnectCmd = &cobra.Command{
	Use:   "disconnect [platform]",
	Short: "Remove a platform's connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnectionsDisconnect,
}

var connectionsSetupCmd = &cobra.Command{
	Use:   "setup [platform]",
	Short: "Show developer setup instructions for a platform",
	Args:  cobra.ExactArgs(1),
	RunE:  runConnectionsSetup,
}

var setupSave bool

func init() {
	connectionsSetupCmd.Flags().BoolVar(&setupSave, "save", false, "Prompt for credentials and store them")

	connectionsCmd.AddCommand(connectionsListCmd)
	connectionsCmd.AddCommand(connectionsConnectCmd)
	connectionsCmd.AddCommand(connectionsDisconnectCmd)
	connectionsCmd.AddCommand(connectionsSetupCmd)
	rootCmd.AddCommand(connectionsCmd)
}

func runConnectionsList(cmd *cobra.Command, _ []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	platforms, err := connectionService.Platforms(context.Background())
	if err != nil {
		return err
	}

	cmd.Printf("%-3s %-11s %-12s %-16s %s\n", "", "PLATFORM", "STATUS", "ACCOUNT", "POST TYPES")
	for _, p := range platforms {
		status := "disconnected"
		if p.Connected {
			status = "connected"
		}
		cmd.Printf("%-3s %-11s %-12s %-16s %s\n",
			p.Icon, p.Name, status, p.Username, strings.Join(p.PostTypes, ", "))
	}
	return nil
}

func runConnectionsConnect(cmd *cobra.Command, args []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	platform := domain.PlatformID(args[0])
	if !platform.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}

	// The callback server must be up before the consent URL is built so
	// the redirect URI carries a live origin.
	port, err := services.FindAvailablePort(8080, 8180)
	if err != nil {
		return err
	}
	callbackSrv.SetPort(port)
	if err := callbackSrv.Start(); err != nil {
		return fmt.Errorf("starting callback server: %w", err)
	}
	defer callbackSrv.Stop()

	ctx := context.Background()
	result, err := connectionService.Connect(ctx, platform)
	if err != nil {
		return err
	}

	if result.NeedsSetup {
		cmd.Printf("%s is not configured yet.\n\n", platform)
		printSetupGuide(cmd, result.SetupGuide)
		return nil
	}

	cmd.Printf("Opening browser for %s authorization...\n", platform)
	if err := callback.OpenBrowser(result.AuthorizationURL); err != nil {
		cmd.Printf("Could not open browser. Visit:\n\n  %s\n\n", result.AuthorizationURL)
	}

	cmd.Println("Waiting for authorization (Ctrl+C to abort)...")
	cb, err := callbackSrv.WaitForCallback(callbackTimeout)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	conn, err := connectionService.HandleCallback(ctx, cb.Platform, cb.Code, cb.State)
	if err != nil {
		return fmt.Errorf("verifying callback: %w", err)
	}

	cmd.Printf("Connected %s as %s\n", conn.Platform, conn.Username)
	return nil
}

func runConnectionsDisconnect(cmd *cobra.Command, args []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	platform := domain.PlatformID(args[0])
	if err := connectionService.Disconnect(context.Background(), platform); err != nil {
		return err
	}

	cmd.Printf("Disconnected %s\n", platform)
	return nil
}

func runConnectionsSetup(cmd *cobra.Command, args []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	platform := domain.PlatformID(args[0])
	if !platform.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, platform)
	}

	// Bind the callback origin to a real port first so the guide prints
	// the redirect URI a connect run would actually use.
	if callbackSrv != nil {
		port, err := services.FindAvailablePort(8080, 8180)
		if err != nil {
			return err
		}
		callbackSrv.SetPort(port)
	}

	guide, err := connectionService.SetupGuide(context.Background(), platform)
	if err != nil {
		return err
	}
	if guide.Configured {
		// Still worth showing so the redirect URI can be copied into
		// the provider console.
		cmd.Printf("%s already has a usable client id.\n\n", platform)
	}
	printSetupGuide(cmd, guide)

	if !setupSave {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	cmd.Print("Client ID: ")
	clientID, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return fmt.Errorf("%w: empty client id", domain.ErrInvalidInput)
	}

	cmd.Print("Client Secret (hidden, optional): ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return err
	}

	if err := configStore.Set(fmt.Sprintf("oauth.%s.client_id", platform), clientID); err != nil {
		return err
	}
	if len(secret) > 0 {
		if err := configStore.Set(fmt.Sprintf("oauth.%s.client_secret", platform), string(secret)); err != nil {
			return err
		}
	}

	cmd.Printf("Saved credentials for %s to %s\n", platform, configStore.Path())
	return nil
}

func printSetupGuide(cmd *cobra.Command, guide *domain.SetupGuide) {
	cmd.Println(guide.Intro)
	cmd.Println()
	for i, step := range guide.Steps {
		cmd.Printf("%d. %s\n", i+1, step.Title)
		if step.Detail != "" {
			cmd.Printf("   %s\n", step.Detail)
		}
		if step.URL != "" {
			cmd.Printf("   %s\n", step.URL)
		}
	}
	cmd.Println()
	cmd.Printf("Redirect URI to whitelist:\n  %s\n", guide.RedirectURI)
	if len(guide.EnvVars) > 0 {
		cmd.Printf("Environment variables:\n  %s\n", strings.Join(guide.EnvVars, "\n  "))
	}
}
