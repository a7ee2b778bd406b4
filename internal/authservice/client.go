// Package authservice talks to the external authentication service that
// owns token issuance and revocation.
package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/censudex/gateway/internal/config"
)

// ValidationResult is the auth service's verdict on a bearer token.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// Client calls the auth service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds a client with the configured call budget.
func NewClient(cfg config.AuthConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.ServiceBaseURL,
		http:    &http.Client{Timeout: cfg.ServiceTimeout()},
		logger:  logger,
	}
}

// Validate confirms a bearer token has not been revoked. The original
// Authorization header is forwarded verbatim. A non-2xx answer means the
// token is invalid; only a transport-level failure returns a non-nil
// error, which callers must not treat as a rejection.
func (c *Client) Validate(ctx context.Context, authHeader string) (ValidationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/validate", nil)
	if err != nil {
		return ValidationResult{}, err
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("auth service validate: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var result ValidationResult
	if decodeErr := json.NewDecoder(resp.Body).Decode(&result); decodeErr != nil {
		result = ValidationResult{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("token validation rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", result.Message),
		)
		result.IsValid = false
		return result, nil
	}

	return result, nil
}

// Login forwards a login payload to the auth service and returns its
// status and raw body unchanged.
func (c *Client) Login(ctx context.Context, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Logout forwards a logout request carrying the caller's bearer header.
func (c *Client) Logout(ctx context.Context, authHeader string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/logout", nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", authHeader)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("auth service %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, payload, nil
}
