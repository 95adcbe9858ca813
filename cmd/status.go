package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/config"
)

var (
	statusJSON bool
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show resolved configuration",
	Long: `Displays the configuration a command would run with: keypair path, RPC URL,
auth mode and the GenesysGo endpoints. Tokens are never printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Resolve(overrides())
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		return showStatus(cmd.OutOrStdout(), settings)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output status in JSON format")
}

// showStatus displays the resolved settings
func showStatus(w io.Writer, settings *config.Settings) error {
	if statusJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(settings)
	}

	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "==============")
	fmt.Fprintf(w, "  Keypair:      %s\n", settings.KeypairPath)
	fmt.Fprintf(w, "  RPC URL:      %s\n", settings.RPCURL)
	fmt.Fprintf(w, "  Auth:         %s\n", settings.Auth)
	fmt.Fprintf(w, "  Skip confirm: %t\n", settings.SkipConfirm)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintf(w, "  Sign-in:       %s\n", settings.Endpoints.SignInURL)
	fmt.Fprintf(w, "  Premium token: %s\n", settings.Endpoints.PremiumTokenURL)
	fmt.Fprintf(w, "  Drive:         %s\n", settings.Endpoints.DriveURL)

	if settings.Auth.Kind == config.AuthAutoSignIn {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "The RPC URL must contain %q and end with your account ID to sign in.\n", settings.Endpoints.DomainMarker)
	}
	return nil
}
