// Package mock provides a testify mock of the drive client.
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/drive"
	"github.com/shdw-drive/shdw-cli/internal/models"
)

// Client mocks a drive.Client.
type Client struct {
	mock.Mock
}

var _ drive.Client = (*Client)(nil)

// CreateStorageAccount mocks the CreateStorageAccount call.
func (m *Client) CreateStorageAccount(ctx context.Context, name string, size uint64, version models.StorageAccountVersion) (*models.CreateStorageAccountResponse, error) {
	args := m.Called(ctx, name, size, version)
	result, _ := args.Get(0).(*models.CreateStorageAccountResponse)
	return result, args.Error(1)
}

// DeleteStorageAccount mocks the DeleteStorageAccount call.
func (m *Client) DeleteStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error) {
	args := m.Called(ctx, account)
	result, _ := args.Get(0).(*models.TransactionResponse)
	return result, args.Error(1)
}

// CancelDeleteStorageAccount mocks the CancelDeleteStorageAccount call.
func (m *Client) CancelDeleteStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error) {
	args := m.Called(ctx, account)
	result, _ := args.Get(0).(*models.TransactionResponse)
	return result, args.Error(1)
}

// ClaimStake mocks the ClaimStake call.
func (m *Client) ClaimStake(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error) {
	args := m.Called(ctx, account)
	result, _ := args.Get(0).(*models.TransactionResponse)
	return result, args.Error(1)
}

// ReduceStorage mocks the ReduceStorage call.
func (m *Client) ReduceStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	args := m.Called(ctx, account, size)
	result, _ := args.Get(0).(*models.StorageResponse)
	return result, args.Error(1)
}

// AddStorage mocks the AddStorage call.
func (m *Client) AddStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	args := m.Called(ctx, account, size)
	result, _ := args.Get(0).(*models.StorageResponse)
	return result, args.Error(1)
}

// AddImmutableStorage mocks the AddImmutableStorage call.
func (m *Client) AddImmutableStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	args := m.Called(ctx, account, size)
	result, _ := args.Get(0).(*models.StorageResponse)
	return result, args.Error(1)
}

// MakeStorageImmutable mocks the MakeStorageImmutable call.
func (m *Client) MakeStorageImmutable(ctx context.Context, account crypto.PublicKey) (*models.StorageResponse, error) {
	args := m.Called(ctx, account)
	result, _ := args.Get(0).(*models.StorageResponse)
	return result, args.Error(1)
}

// GetStorageAccount mocks the GetStorageAccount call.
func (m *Client) GetStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.StorageAccount, error) {
	args := m.Called(ctx, account)
	result, _ := args.Get(0).(*models.StorageAccount)
	return result, args.Error(1)
}

// GetStorageAccounts mocks the GetStorageAccounts call.
func (m *Client) GetStorageAccounts(ctx context.Context, owner crypto.PublicKey) ([]models.StorageAccount, error) {
	args := m.Called(ctx, owner)
	result, _ := args.Get(0).([]models.StorageAccount)
	return result, args.Error(1)
}

// ListObjects mocks the ListObjects call.
func (m *Client) ListObjects(ctx context.Context, account crypto.PublicKey) ([]string, error) {
	args := m.Called(ctx, account)
	result, _ := args.Get(0).([]string)
	return result, args.Error(1)
}

// DeleteFile mocks the DeleteFile call.
func (m *Client) DeleteFile(ctx context.Context, account crypto.PublicKey, location string) (*models.DeleteFileResponse, error) {
	args := m.Called(ctx, account, location)
	result, _ := args.Get(0).(*models.DeleteFileResponse)
	return result, args.Error(1)
}

// EditFile mocks the EditFile call.
func (m *Client) EditFile(ctx context.Context, account crypto.PublicKey, file models.ShadowFile) (*models.EditFileResponse, error) {
	args := m.Called(ctx, account, file)
	result, _ := args.Get(0).(*models.EditFileResponse)
	return result, args.Error(1)
}

// GetObjectData mocks the GetObjectData call.
func (m *Client) GetObjectData(ctx context.Context, location string) (*models.FileDataResponse, error) {
	args := m.Called(ctx, location)
	result, _ := args.Get(0).(*models.FileDataResponse)
	return result, args.Error(1)
}

// StoreFiles mocks the StoreFiles call.
func (m *Client) StoreFiles(ctx context.Context, account crypto.PublicKey, files []models.ShadowFile) (*models.UploadResponse, error) {
	args := m.Called(ctx, account, files)
	result, _ := args.Get(0).(*models.UploadResponse)
	return result, args.Error(1)
}

// GetText mocks the GetText call.
func (m *Client) GetText(ctx context.Context, location string) (*models.TextFile, error) {
	args := m.Called(ctx, location)
	result, _ := args.Get(0).(*models.TextFile)
	return result, args.Error(1)
}
