package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <sealed-file> <output>",
	Short: "Decrypt a file uploaded with --encrypt",
	Long: `Decrypts a file that was sealed by 'store-files --encrypt' and downloaded
again. The key is derived from the same signer used for the upload.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}
		aead, err := crypto.DeriveFileAEAD(sess.signer)
		if err != nil {
			return fmt.Errorf("failed to derive file key: %w", err)
		}
		if err := crypto.OpenFile(aead, args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Decrypted %s to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
