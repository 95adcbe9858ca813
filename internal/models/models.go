package models

import (
	"fmt"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
)

// StorageAccountVersion selects the on-chain account layout.
type StorageAccountVersion string

const (
	StorageAccountV1 StorageAccountVersion = "v1"
	StorageAccountV2 StorageAccountVersion = "v2"
)

// ParseStorageAccountVersion validates a version flag value.
func ParseStorageAccountVersion(s string) (StorageAccountVersion, error) {
	switch v := StorageAccountVersion(s); v {
	case StorageAccountV1, StorageAccountV2:
		return v, nil
	default:
		return "", fmt.Errorf("unknown storage account version %q, expected v1 or v2", s)
	}
}

// StorageAccount represents a storage account as reported by the drive API
type StorageAccount struct {
	Address            crypto.PublicKey `json:"storage_account"`
	Identifier         string           `json:"identifier"`
	Owner              crypto.PublicKey `json:"owner_1"`
	Storage            uint64           `json:"reserved_bytes"`
	StorageAvailable   uint64           `json:"storage_available"`
	Immutable          bool             `json:"immutable"`
	ToBeDeleted        bool             `json:"to_be_deleted"`
	DeleteRequestEpoch uint32           `json:"delete_request_epoch"`
	CreationTime       uint32           `json:"creation_time"`
	Version            string           `json:"version"`
}

// CreateStorageAccountResponse from storage account creation
type CreateStorageAccountResponse struct {
	ShdwBucket  string `json:"shdw_bucket"`
	Transaction string `json:"transaction_signature"`
}

// TransactionResponse is returned by account level mutations
type TransactionResponse struct {
	TxID string `json:"txid"`
}

// StorageResponse is returned by resize operations
type StorageResponse struct {
	Message     string `json:"message"`
	Transaction string `json:"transaction_signature"`
	Error       string `json:"error,omitempty"`
}

// ListObjectsResponse lists the keys stored in an account
type ListObjectsResponse struct {
	Keys []string `json:"keys"`
}

// FileData describes a stored object
type FileData struct {
	OwnerPubkey    string `json:"owner-account-pubkey"`
	StorageAccount string `json:"storage-account-pubkey"`
	Name           string `json:"file-name"`
	Size           uint64 `json:"file-size,omitempty"`
	LastModified   string `json:"last-modified,omitempty"`
}

// FileDataResponse from get-object-data
type FileDataResponse struct {
	FileData FileData `json:"file_data"`
}

// UploadError is a per-file failure within an otherwise accepted upload
type UploadError struct {
	File           string `json:"file"`
	StorageAccount string `json:"storage_account"`
	Error          string `json:"error"`
}

// UploadResponse from store-files
type UploadResponse struct {
	FinalizedLocations []string      `json:"finalized_locations"`
	Message            string        `json:"message"`
	UploadErrors       []UploadError `json:"upload_errors"`
}

// DeleteFileResponse from delete-file
type DeleteFileResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// EditFileResponse from edit-file
type EditFileResponse struct {
	FinalizedLocation string `json:"finalized_location"`
	Error             string `json:"error,omitempty"`
}

// ShadowFile names a local file and the name it is stored under.
type ShadowFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// TextFile is the result of reading a text/plain object.
type TextFile struct {
	Location     string `json:"location"`
	LastModified string `json:"last_modified"`
	Body         string `json:"body"`
}
