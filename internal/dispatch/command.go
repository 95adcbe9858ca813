package dispatch

import (
	"fmt"

	"github.com/c2h5oh/datasize"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/models"
)

// Command is one user requested operation. The set of variants is closed.
type Command interface {
	// Name is the CLI name of the command.
	Name() string
	// Describe is the line printed before the command runs.
	Describe() string
	// Irreversible commands pass the confirmation gate first.
	Irreversible() bool

	isCommand()
}

type irreversible struct{}

func (irreversible) Irreversible() bool { return true }
func (irreversible) isCommand()         {}

type readOnly struct{}

func (readOnly) Irreversible() bool { return false }
func (readOnly) isCommand()         {}

type CreateStorageAccount struct {
	irreversible
	Identifier string
	Size       datasize.ByteSize
	Version    models.StorageAccountVersion
}

func (CreateStorageAccount) Name() string { return "create-storage-account" }
func (c CreateStorageAccount) Describe() string {
	return fmt.Sprintf("Create Storage Account %s: %s", c.Identifier, c.Size.HR())
}

type DeleteStorageAccount struct {
	irreversible
	Account crypto.PublicKey
}

func (DeleteStorageAccount) Name() string { return "delete-storage-account" }
func (c DeleteStorageAccount) Describe() string {
	return fmt.Sprintf("Delete Storage Account %s", c.Account)
}

type CancelDeleteStorageAccount struct {
	irreversible
	Account crypto.PublicKey
}

func (CancelDeleteStorageAccount) Name() string { return "cancel-delete-storage-account" }
func (c CancelDeleteStorageAccount) Describe() string {
	return fmt.Sprintf("Cancellation of Delete Storage Account %s", c.Account)
}

type ClaimStake struct {
	irreversible
	Account crypto.PublicKey
}

func (ClaimStake) Name() string { return "claim-stake" }
func (c ClaimStake) Describe() string {
	return fmt.Sprintf("Claim Stake on Storage Account %s", c.Account)
}

type ReduceStorage struct {
	irreversible
	Account crypto.PublicKey
	Size    datasize.ByteSize
}

func (ReduceStorage) Name() string { return "reduce-storage" }
func (c ReduceStorage) Describe() string {
	return fmt.Sprintf("Reduce Storage Capacity %s: %s", c.Account, c.Size.HR())
}

type AddStorage struct {
	irreversible
	Account crypto.PublicKey
	Size    datasize.ByteSize
}

func (AddStorage) Name() string { return "add-storage" }
func (c AddStorage) Describe() string {
	return fmt.Sprintf("Increase Storage %s: %s", c.Account, c.Size.HR())
}

type AddImmutableStorage struct {
	irreversible
	Account crypto.PublicKey
	Size    datasize.ByteSize
}

func (AddImmutableStorage) Name() string { return "add-immutable-storage" }
func (c AddImmutableStorage) Describe() string {
	return fmt.Sprintf("Increase Immutable Storage %s: %s", c.Account, c.Size.HR())
}

type MakeStorageImmutable struct {
	irreversible
	Account crypto.PublicKey
}

func (MakeStorageImmutable) Name() string { return "make-storage-immutable" }
func (c MakeStorageImmutable) Describe() string {
	return fmt.Sprintf("Make Storage Immutable %s", c.Account)
}

type GetStorageAccount struct {
	readOnly
	Account crypto.PublicKey
}

func (GetStorageAccount) Name() string { return "get-storage-account" }
func (c GetStorageAccount) Describe() string {
	return fmt.Sprintf("Get Storage Account %s", c.Account)
}

// GetStorageAccounts lists accounts owned by Owner, or by the signer when
// Owner is nil.
type GetStorageAccounts struct {
	readOnly
	Owner *crypto.PublicKey
}

func (GetStorageAccounts) Name() string { return "get-storage-accounts" }
func (c GetStorageAccounts) Describe() string {
	if c.Owner == nil {
		return "Get Storage Accounts Owned By signer"
	}
	return fmt.Sprintf("Get Storage Accounts Owned By %s", c.Owner)
}

type ListFiles struct {
	readOnly
	Account crypto.PublicKey
}

func (ListFiles) Name() string { return "list-files" }
func (c ListFiles) Describe() string {
	return fmt.Sprintf("List Files for Storage Account %s", c.Account)
}

type GetText struct {
	readOnly
	Account crypto.PublicKey
	File    string
}

func (GetText) Name() string { return "get-text" }
func (c GetText) Describe() string {
	return fmt.Sprintf("Get Text %s %s", c.Account, c.File)
}

type DeleteFile struct {
	irreversible
	Account crypto.PublicKey
	File    string
}

func (DeleteFile) Name() string { return "delete-file" }
func (c DeleteFile) Describe() string {
	return fmt.Sprintf("Delete file %s %s", c.Account, c.File)
}

// EditFile replaces the stored file named after the base name of the local
// path File.
type EditFile struct {
	irreversible
	Account crypto.PublicKey
	File    string
}

func (EditFile) Name() string { return "edit-file" }
func (c EditFile) Describe() string {
	return fmt.Sprintf("Edit file %s %s", c.Account, c.File)
}

type GetObjectData struct {
	readOnly
	Account crypto.PublicKey
	File    string
}

func (GetObjectData) Name() string { return "get-object-data" }
func (c GetObjectData) Describe() string {
	return fmt.Sprintf("Get object data %s %s", c.Account, c.File)
}

// StoreFiles uploads Files in batches of at most BatchSize, or
// DefaultBatchSize when BatchSize is zero. Encrypt seals every file before
// it leaves the machine.
type StoreFiles struct {
	irreversible
	Account   crypto.PublicKey
	Files     []string
	BatchSize int
	Encrypt   bool
}

func (StoreFiles) Name() string { return "store-files" }
func (c StoreFiles) Describe() string {
	return fmt.Sprintf("Store Files %s %v", c.Account, c.Files)
}
