package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signer in use",
	Long: `Displays the public key of the configured signer and the RPC URL it talks to.

Useful for confirming which wallet a command will sign with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Public key:  %s\n", sess.signer.PublicKey())
		fmt.Fprintf(cmd.OutOrStdout(), "Interactive: %t\n", sess.signer.IsInteractive())
		fmt.Fprintf(cmd.OutOrStdout(), "RPC URL:     %s\n", sess.settings.RPCURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
