package cmd

import (
	"github.com/c2h5oh/datasize"
	"github.com/spf13/cobra"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/dispatch"
	"github.com/shdw-drive/shdw-cli/internal/models"
)

var accountVersion string

var createStorageAccountCmd = &cobra.Command{
	Use:   "create-storage-account <name> <size>",
	Short: "Create a storage account",
	Long: `Creates a storage account owned by the signer with room for <size> bytes.

Sizes accept units, for example 500KB, 1MB or 2GB.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := parseSize(args[1])
		if err != nil {
			return err
		}
		version, err := models.ParseStorageAccountVersion(accountVersion)
		if err != nil {
			return err
		}
		return run(cmd, dispatch.CreateStorageAccount{Identifier: args[0], Size: size, Version: version}, runOptions{})
	},
}

var deleteStorageAccountCmd = &cobra.Command{
	Use:   "delete-storage-account <storage-account>",
	Short: "Request deletion of a storage account",
	Args:  cobra.ExactArgs(1),
	RunE: accountCommand(func(account crypto.PublicKey) dispatch.Command {
		return dispatch.DeleteStorageAccount{Account: account}
	}),
}

var cancelDeleteStorageAccountCmd = &cobra.Command{
	Use:   "cancel-delete-storage-account <storage-account>",
	Short: "Cancel a pending deletion request",
	Args:  cobra.ExactArgs(1),
	RunE: accountCommand(func(account crypto.PublicKey) dispatch.Command {
		return dispatch.CancelDeleteStorageAccount{Account: account}
	}),
}

var claimStakeCmd = &cobra.Command{
	Use:   "claim-stake <storage-account>",
	Short: "Claim the stake of a storage account after reducing it",
	Args:  cobra.ExactArgs(1),
	RunE: accountCommand(func(account crypto.PublicKey) dispatch.Command {
		return dispatch.ClaimStake{Account: account}
	}),
}

var reduceStorageCmd = &cobra.Command{
	Use:   "reduce-storage <storage-account> <size>",
	Short: "Reduce the capacity of a storage account",
	Args:  cobra.ExactArgs(2),
	RunE: resizeCommand(func(account crypto.PublicKey, size datasize.ByteSize) dispatch.Command {
		return dispatch.ReduceStorage{Account: account, Size: size}
	}),
}

var addStorageCmd = &cobra.Command{
	Use:   "add-storage <storage-account> <size>",
	Short: "Increase the capacity of a storage account",
	Args:  cobra.ExactArgs(2),
	RunE: resizeCommand(func(account crypto.PublicKey, size datasize.ByteSize) dispatch.Command {
		return dispatch.AddStorage{Account: account, Size: size}
	}),
}

var addImmutableStorageCmd = &cobra.Command{
	Use:   "add-immutable-storage <storage-account> <size>",
	Short: "Increase the capacity of an immutable storage account",
	Args:  cobra.ExactArgs(2),
	RunE: resizeCommand(func(account crypto.PublicKey, size datasize.ByteSize) dispatch.Command {
		return dispatch.AddImmutableStorage{Account: account, Size: size}
	}),
}

var makeStorageImmutableCmd = &cobra.Command{
	Use:   "make-storage-immutable <storage-account>",
	Short: "Make a storage account immutable",
	Long:  `Makes a storage account immutable. Files in it can no longer be edited or deleted.`,
	Args:  cobra.ExactArgs(1),
	RunE: accountCommand(func(account crypto.PublicKey) dispatch.Command {
		return dispatch.MakeStorageImmutable{Account: account}
	}),
}

var getStorageAccountCmd = &cobra.Command{
	Use:   "get-storage-account <storage-account>",
	Short: "Show a storage account",
	Args:  cobra.ExactArgs(1),
	RunE: accountCommand(func(account crypto.PublicKey) dispatch.Command {
		return dispatch.GetStorageAccount{Account: account}
	}),
}

var getStorageAccountsCmd = &cobra.Command{
	Use:   "get-storage-accounts [owner]",
	Short: "List storage accounts owned by a wallet",
	Long:  `Lists the storage accounts owned by [owner], or by the signer when no owner is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := dispatch.GetStorageAccounts{}
		if len(args) == 1 {
			owner, err := parsePublicKey("owner", args[0])
			if err != nil {
				return err
			}
			c.Owner = &owner
		}
		return run(cmd, c, runOptions{})
	},
}

func init() {
	createStorageAccountCmd.Flags().StringVar(&accountVersion, "version", string(models.StorageAccountV2),
		"Storage account version, v1 or v2")

	rootCmd.AddCommand(
		createStorageAccountCmd,
		deleteStorageAccountCmd,
		cancelDeleteStorageAccountCmd,
		claimStakeCmd,
		reduceStorageCmd,
		addStorageCmd,
		addImmutableStorageCmd,
		makeStorageImmutableCmd,
		getStorageAccountCmd,
		getStorageAccountsCmd,
	)
}

// accountCommand builds a RunE for commands taking only a storage account.
func accountCommand(build func(crypto.PublicKey) dispatch.Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		account, err := parsePublicKey("storage account", args[0])
		if err != nil {
			return err
		}
		return run(cmd, build(account), runOptions{})
	}
}

// resizeCommand builds a RunE for commands taking a storage account and a size.
func resizeCommand(build func(crypto.PublicKey, datasize.ByteSize) dispatch.Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		account, err := parsePublicKey("storage account", args[0])
		if err != nil {
			return err
		}
		size, err := parseSize(args[1])
		if err != nil {
			return err
		}
		return run(cmd, build(account, size), runOptions{})
	}
}
