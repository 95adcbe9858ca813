package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/shdw-drive/shdw-cli/internal/config"
	"github.com/shdw-drive/shdw-cli/internal/signer"
)

// SignInMessage is signed in step 1. The server compares it byte for byte.
const SignInMessage = "Sign in to GenesysGo Shadow Platform."

var ErrMissingToken = errors.New("response has no token")

// SignInRequest is the body of the step 1 request
type SignInRequest struct {
	Message string `json:"message"` // base58 signature over SignInMessage
	Signer  string `json:"signer"`
}

// User is the account record embedded in the step 1 response
type User struct {
	ID        uint64 `json:"id"`
	PublicKey string `json:"publicKey"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// IntermediateToken is the step 1 response. Its token only authorizes step 2.
type IntermediateToken struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// TokenResponse is the step 2 response carrying the usable bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// HandshakeError reports a failed sign-in step.
type HandshakeError struct {
	Step       int
	StatusCode int
	Err        error
}

func (e *HandshakeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("sign-in step %d failed (HTTP %d): %v", e.Step, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("sign-in step %d failed: %v", e.Step, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}

// Client performs the two step sign-in handshake.
type Client struct {
	httpClient *http.Client
	endpoints  config.Endpoints
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// NewClient creates a handshake client for the given endpoints. No request
// timeout is set; cancellation comes from the caller's context.
func NewClient(endpoints config.Endpoints, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		endpoints:  endpoints,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignIn exchanges a signature over SignInMessage for a bearer token scoped
// to accountID. Step 2 only runs once step 1 has produced an intermediate
// token; either step failing fails the whole handshake.
func (c *Client) SignIn(ctx context.Context, s signer.Signer, accountID string) (string, error) {
	intermediate, err := c.requestIntermediateToken(ctx, s)
	if err != nil {
		return "", err
	}
	log.Ctx(ctx).Debug().Uint64("user_id", intermediate.User.ID).Msg("sign-in step 1 complete")

	final, err := c.exchangeToken(ctx, intermediate, accountID)
	if err != nil {
		return "", err
	}
	log.Ctx(ctx).Debug().Str("account_id", accountID).Msg("sign-in step 2 complete")

	return final.Token, nil
}

// requestIntermediateToken signs the challenge and posts it to the sign-in endpoint.
func (c *Client) requestIntermediateToken(ctx context.Context, s signer.Signer) (*IntermediateToken, error) {
	sig := s.Sign([]byte(SignInMessage))
	body := SignInRequest{
		Message: sig.String(),
		Signer:  s.PublicKey().String(),
	}

	var resp IntermediateToken
	if err := c.postJSON(ctx, 1, c.endpoints.SignInURL, "", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &HandshakeError{Step: 1, Err: ErrMissingToken}
	}
	return &resp, nil
}

// exchangeToken trades the intermediate token for the account scoped token.
func (c *Client) exchangeToken(ctx context.Context, intermediate *IntermediateToken, accountID string) (*TokenResponse, error) {
	tokenURL := c.endpoints.PremiumTokenURL + "/" + accountID

	var resp TokenResponse
	if err := c.postJSON(ctx, 2, tokenURL, intermediate.Token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &HandshakeError{Step: 2, Err: ErrMissingToken}
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, step int, url, bearer string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &HandshakeError{Step: step, Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return &HandshakeError{Step: step, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &HandshakeError{Step: step, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &HandshakeError{Step: step, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HandshakeError{Step: step, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected response: %s", bytes.TrimSpace(data))}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &HandshakeError{Step: step, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
