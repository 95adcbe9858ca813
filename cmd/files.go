package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/dispatch"
)

var (
	batchSize       int
	continueOnError bool
	encryptUpload   bool
)

var listFilesCmd = &cobra.Command{
	Use:   "list-files <storage-account>",
	Short: "List the files in a storage account",
	Args:  cobra.ExactArgs(1),
	RunE: accountCommand(func(account crypto.PublicKey) dispatch.Command {
		return dispatch.ListFiles{Account: account}
	}),
}

var getTextCmd = &cobra.Command{
	Use:   "get-text <storage-account> <file>",
	Short: "Print a stored text file",
	Long:  `Prints a stored file served as text/plain, with its last modified time.`,
	Args:  cobra.ExactArgs(2),
	RunE: fileCommand(func(account crypto.PublicKey, file string) dispatch.Command {
		return dispatch.GetText{Account: account, File: file}
	}),
}

var deleteFileCmd = &cobra.Command{
	Use:   "delete-file <storage-account> <file>",
	Short: "Delete a stored file",
	Args:  cobra.ExactArgs(2),
	RunE: fileCommand(func(account crypto.PublicKey, file string) dispatch.Command {
		return dispatch.DeleteFile{Account: account, File: file}
	}),
}

var editFileCmd = &cobra.Command{
	Use:   "edit-file <storage-account> <path>",
	Short: "Replace a stored file with a local one",
	Long:  `Replaces the stored file named after the base name of <path> with the contents of <path>.`,
	Args:  cobra.ExactArgs(2),
	RunE: fileCommand(func(account crypto.PublicKey, path string) dispatch.Command {
		return dispatch.EditFile{Account: account, File: path}
	}),
}

var getObjectDataCmd = &cobra.Command{
	Use:   "get-object-data <storage-account> <file>",
	Short: "Show metadata of a stored file",
	Args:  cobra.ExactArgs(2),
	RunE: fileCommand(func(account crypto.PublicKey, file string) dispatch.Command {
		return dispatch.GetObjectData{Account: account, File: file}
	}),
}

var storeFilesCmd = &cobra.Command{
	Use:   "store-files <storage-account> <path>...",
	Short: "Upload files to a storage account",
	Long: `Uploads local files to a storage account. Each file is stored under its base name.

Files are sent in batches of --batch-size. By default the first failed batch
stops the upload; batches already sent stay uploaded. With --continue-on-error
every batch is attempted and all failures are reported at the end.

Uploaded files are public. Pass --encrypt to seal every file with a key
derived from your wallet before it is sent; 'shdw-drive decrypt' opens it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := parsePublicKey("storage account", args[0])
		if err != nil {
			return err
		}
		opts := runOptions{strategy: dispatch.AbortRemaining}
		if continueOnError {
			opts.strategy = dispatch.ContinueAndCollectErrors
		}
		return run(cmd, dispatch.StoreFiles{
			Account:   account,
			Files:     args[1:],
			BatchSize: batchSize,
			Encrypt:   encryptUpload,
		}, opts)
	},
}

func init() {
	storeFilesCmd.Flags().IntVar(&batchSize, "batch-size", dispatch.DefaultBatchSize, "Number of files per upload request")
	storeFilesCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "Upload the remaining batches after one fails")
	storeFilesCmd.Flags().BoolVar(&encryptUpload, "encrypt", false, "Encrypt files with a key derived from the signer before upload")

	rootCmd.AddCommand(
		listFilesCmd,
		getTextCmd,
		deleteFileCmd,
		editFileCmd,
		getObjectDataCmd,
		storeFilesCmd,
	)
}

// fileCommand builds a RunE for commands taking a storage account and a file.
func fileCommand(build func(crypto.PublicKey, string) dispatch.Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		account, err := parsePublicKey("storage account", args[0])
		if err != nil {
			return err
		}
		return run(cmd, build(account, args[1]), runOptions{})
	}
}
