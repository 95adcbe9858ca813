package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/prompt"
)

var forceKeygen bool

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage local wallet keypair files",
	Long: `Manage keypair files in the JSON layout the Solana CLI uses, so they can be
passed to --keypair or referenced from the Solana CLI config.`,
}

// keysGenerateCmd generates a new keypair file
var keysGenerateCmd = &cobra.Command{
	Use:   "generate <path>",
	Short: "Generate a new keypair file",
	Long: `Generates a new ed25519 keypair and writes it to <path> readable only by you.
An existing file is only replaced after confirmation, or with --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ExpandHome(args[0])
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceKeygen && !skipConfirm {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Replacing it loses access to its wallet.\n", path)
			console := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := console.Confirm("Replace it?"); err != nil {
				return err
			}
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}

		kp, err := crypto.GenerateKeypair()
		if err != nil {
			return err
		}
		if err := crypto.SaveKeypair(kp, path); err != nil {
			return fmt.Errorf("failed to save keypair: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote new keypair to %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", kp.Address())
		return nil
	},
}

// keysPubkeyCmd prints the address of a keypair
var keysPubkeyCmd = &cobra.Command{
	Use:   "pubkey [keypair]",
	Short: "Print the public key of a keypair",
	Long:  `Prints the public key of [keypair], which accepts every form --keypair does. Without it the configured signer is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			keypairPath = args[0]
		}
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sess.signer.PublicKey())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysGenerateCmd)
	keysCmd.AddCommand(keysPubkeyCmd)

	keysGenerateCmd.Flags().BoolVarP(&forceKeygen, "force", "f", false, "Replace an existing file without confirmation")
}
