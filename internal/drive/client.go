package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/models"
	"github.com/shdw-drive/shdw-cli/internal/signer"
)

// HTTPClient talks to the drive API over HTTP, signing every mutating
// request with the configured signer.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	signer     signer.Signer
	token      string
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithToken sets the bearer token sent with every API request.
func WithToken(token string) Option {
	return func(c *HTTPClient) {
		c.token = token
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// NewHTTPClient creates a client for the drive API at baseURL.
func NewHTTPClient(baseURL string, s signer.Signer, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		signer:     s,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// accountRequest is the body of every account level request
type accountRequest struct {
	Signer         string `json:"signer"`
	Message        string `json:"message"`
	StorageAccount string `json:"storage_account,omitempty"`
	Name           string `json:"name,omitempty"`
	Size           uint64 `json:"size,omitempty"`
	Version        string `json:"version,omitempty"`
}

type deleteFileRequest struct {
	Signer   string `json:"signer"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

func (c *HTTPClient) CreateStorageAccount(ctx context.Context, name string, size uint64, version models.StorageAccountVersion) (*models.CreateStorageAccountResponse, error) {
	req := c.accountRequest(createAccountMessage(name, size), crypto.PublicKey{})
	req.Name = name
	req.Size = size
	req.Version = string(version)

	var resp models.CreateStorageAccountResponse
	if err := c.postJSON(ctx, "/storage-account", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error) {
	return c.accountTransaction(ctx, "/storage-account/delete", actionDelete, account)
}

func (c *HTTPClient) CancelDeleteStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error) {
	return c.accountTransaction(ctx, "/storage-account/cancel-delete", actionCancelDelete, account)
}

func (c *HTTPClient) ClaimStake(ctx context.Context, account crypto.PublicKey) (*models.TransactionResponse, error) {
	return c.accountTransaction(ctx, "/storage-account/claim-stake", actionClaimStake, account)
}

func (c *HTTPClient) ReduceStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	return c.resize(ctx, "/storage-account/reduce-storage", actionReduceStorage, account, size)
}

func (c *HTTPClient) AddStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	return c.resize(ctx, "/storage-account/add-storage", actionAddStorage, account, size)
}

func (c *HTTPClient) AddImmutableStorage(ctx context.Context, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	return c.resize(ctx, "/storage-account/add-immutable-storage", actionAddImmutableStorage, account, size)
}

func (c *HTTPClient) MakeStorageImmutable(ctx context.Context, account crypto.PublicKey) (*models.StorageResponse, error) {
	return c.resize(ctx, "/storage-account/make-immutable", actionMakeImmutable, account, 0)
}

func (c *HTTPClient) GetStorageAccount(ctx context.Context, account crypto.PublicKey) (*models.StorageAccount, error) {
	body := map[string]string{"storage_account": account.String()}

	var resp models.StorageAccount
	if err := c.postJSON(ctx, "/storage-account-info", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetStorageAccounts(ctx context.Context, owner crypto.PublicKey) ([]models.StorageAccount, error) {
	body := map[string]string{"owner": owner.String()}

	var resp []models.StorageAccount
	if err := c.postJSON(ctx, "/storage-accounts", body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) ListObjects(ctx context.Context, account crypto.PublicKey) ([]string, error) {
	body := map[string]string{"storageAccount": account.String()}

	var resp models.ListObjectsResponse
	if err := c.postJSON(ctx, "/list-objects", body, &resp); err != nil {
		return nil, err
	}
	return resp.Keys, nil
}

func (c *HTTPClient) DeleteFile(ctx context.Context, account crypto.PublicKey, location string) (*models.DeleteFileResponse, error) {
	msg := deleteFileMessage(account, location)
	req := deleteFileRequest{
		Signer:   c.signer.PublicKey().String(),
		Message:  c.signer.Sign([]byte(msg)).String(),
		Location: location,
	}

	var resp models.DeleteFileResponse
	if err := c.postJSON(ctx, "/delete-file", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) EditFile(ctx context.Context, account crypto.PublicKey, file models.ShadowFile) (*models.EditFileResponse, error) {
	contents, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Path, err)
	}
	location := URL(c.baseURL, account, file.Name)
	msg := editFileMessage(account, location, contents)

	fields := map[string]string{
		"message":         c.signer.Sign([]byte(msg)).String(),
		"signer":          c.signer.PublicKey().String(),
		"storage_account": account.String(),
		"url":             location,
	}

	var resp models.EditFileResponse
	if err := c.postMultipart(ctx, "/edit", fields, []models.ShadowFile{file}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetObjectData(ctx context.Context, location string) (*models.FileDataResponse, error) {
	body := map[string]string{"location": location}

	var resp models.FileDataResponse
	if err := c.postJSON(ctx, "/get-object-data", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) StoreFiles(ctx context.Context, account crypto.PublicKey, files []models.ShadowFile) (*models.UploadResponse, error) {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	msg := uploadMessage(account, names)

	fields := map[string]string{
		"message":         c.signer.Sign([]byte(msg)).String(),
		"signer":          c.signer.PublicKey().String(),
		"storage_account": account.String(),
		"fileNames":       joinNames(names),
	}

	var resp models.UploadResponse
	if err := c.postMultipart(ctx, "/upload", fields, files, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) accountRequest(msg string, account crypto.PublicKey) accountRequest {
	req := accountRequest{
		Signer:  c.signer.PublicKey().String(),
		Message: c.signer.Sign([]byte(msg)).String(),
	}
	if !account.IsZero() {
		req.StorageAccount = account.String()
	}
	return req
}

func (c *HTTPClient) accountTransaction(ctx context.Context, path, action string, account crypto.PublicKey) (*models.TransactionResponse, error) {
	req := c.accountRequest(accountMessage(action, account, 0), account)

	var resp models.TransactionResponse
	if err := c.postJSON(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) resize(ctx context.Context, path, action string, account crypto.PublicKey, size uint64) (*models.StorageResponse, error) {
	req := c.accountRequest(accountMessage(action, account, size), account)
	req.Size = size

	var resp models.StorageResponse
	if err := c.postJSON(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// postJSON makes an authenticated JSON request and decodes the response into out
func (c *HTTPClient) postJSON(ctx context.Context, path string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// postMultipart uploads files alongside form fields
func (c *HTTPClient) postMultipart(ctx context.Context, path string, fields map[string]string, files []models.ShadowFile, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for _, f := range files {
		if err := copyFilePart(w, f); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, out)
}

func copyFilePart(w *multipart.Writer, f models.ShadowFile) error {
	file, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.Path, err)
	}
	defer file.Close()

	part, err := w.CreateFormFile("file", f.Name)
	if err != nil {
		return fmt.Errorf("failed to create form file %s: %w", f.Name, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return nil
}

func (c *HTTPClient) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Ctx(req.Context()).Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("drive request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return handleAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// handleAPIError turns an error response into a ServerError
func handleAPIError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("HTTP %d: failed to read error response: %w", resp.StatusCode, err)
	}

	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := string(bytes.TrimSpace(body))
	if json.Unmarshal(body, &apiErr) == nil {
		switch {
		case apiErr.Error != "":
			msg = apiErr.Error
		case apiErr.Message != "":
			msg = apiErr.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &ServerError{StatusCode: resp.StatusCode, Message: msg}
}
