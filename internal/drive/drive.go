// Package drive is the seam to the Shadow Drive storage API. Client is the
// collaborator the dispatcher consumes; HTTPClient is its HTTP adapter.
package drive

import (
	"context"
	"fmt"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/models"
)

// Client is the storage API. Every call is one network round trip.
type Client interface {
	CreateStorageAccount(ctx context.Context, name string, size uint64, version models.StorageAccountVersion) (*models.CreateStorageAccountResponse, error)
	DeleteStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error)
	CancelDeleteStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error)
	ClaimStake(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error)
	ReduceStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error)
	AddStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error)
	AddImmutableStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error)
	MakeStorageImmutable(ctx context.Context, account crypto.PublicKey) (*models.StorageResponse, error)
	GetStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.StorageAccount, error)
	GetStorageAccounts(ctx context.Context, owner crypto.PublicKey) ([]models.StorageAccount, error)
	ListObjects(ctx context.Context, account crypto.PublicKey) ([]string, error)
	DeleteFile(ctx context.Context, account crypto.PublicKey, location string) (*models.DeleteFileResponse, error)
	EditFile(ctx context.Context, account crypto.PublicKey, file models.ShadowFile) (*models.EditFileResponse, error)
	GetObjectData(ctx context.Context, location string) (*models.FileDataResponse, error)
	StoreFiles(ctx context.Context, account crypto.PublicKey, files []models.ShadowFile) (*models.UploadResponse, error)
	GetText(ctx context.Context, location string) (*models.TextFile, error)
}

// ServerError is a failure the drive API reported with a readable message.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("drive API error (%d): %s", e.StatusCode, e.Message)
}

// NotTextError reports that a location does not hold a text/plain object.
type NotTextError struct {
	Location    string
	ContentType string
}

func (e *NotTextError) Error() string {
	return fmt.Sprintf("not a text file at url %s (content-type %q)", e.Location, e.ContentType)
}
