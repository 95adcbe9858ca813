package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shdw-drive/shdw-cli/internal/crypto"
	"github.com/shdw-drive/shdw-cli/internal/models"
)

var ErrNoLastModified = errors.New("'last-modified' header not found")

// URL builds the public location of a stored file.
func URL(base string, account crypto.PublicKey, file string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), account, file)
}

// IsTextResponse reports whether the content-type header is exactly
// text/plain. Parameters such as a charset are not accepted.
func IsTextResponse(h http.Header) bool {
	return h.Get("Content-Type") == "text/plain"
}

// LastModified returns the last-modified header unaltered.
func LastModified(h http.Header) (string, error) {
	v := h.Get("Last-Modified")
	if v == "" {
		return "", ErrNoLastModified
	}
	return v, nil
}

// GetText checks with a HEAD that location holds a text/plain object and
// then fetches it.
func (c *HTTPClient) GetText(ctx context.Context, location string) (*models.TextFile, error) {
	head, err := c.fetch(ctx, http.MethodHead, location)
	if err != nil {
		return nil, err
	}
	head.Body.Close()
	if !IsTextResponse(head.Header) {
		return nil, &NotTextError{Location: location, ContentType: head.Header.Get("Content-Type")}
	}

	resp, err := c.fetch(ctx, http.MethodGet, location)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	lastModified, err := LastModified(resp.Header)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}

	return &models.TextFile{
		Location:     location,
		LastModified: lastModified,
		Body:         string(body),
	}, nil
}

func (c *HTTPClient) fetch(ctx context.Context, method, location string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, location, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s %s failed: %s", method, location, resp.Status)
	}
	return resp, nil
}
