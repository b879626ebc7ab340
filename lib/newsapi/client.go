// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseSize bounds API response body reads: 64 MB. This exists
// solely to prevent a pathological response from exhausting memory;
// legitimate responses are orders of magnitude smaller.
const maxResponseSize int64 = 64 << 20

// TokenSource supplies the bearer credential for authenticated
// requests. The session store implements it. Returning an empty
// string means "send the request unauthenticated".
type TokenSource interface {
	AccessToken() string
}

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the base URL of the news service (e.g., "http://localhost:8000").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the news service. It is safe for concurrent use once
// constructed; SetTokenSource must be called before any goroutines
// share the client.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	tokenSource TokenSource
}

// NewClient creates a news service client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("newsapi: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("newsapi: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// SetTokenSource installs the bearer credential source consulted on
// every request. A nil source sends all requests unauthenticated.
func (c *Client) SetTokenSource(source TokenSource) {
	c.tokenSource = source
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON performs a request with an optional JSON body and returns the
// response body. On 2xx, returns the body. On 4xx/5xx, returns a
// *APIError built from the service's {"detail": ...} envelope.
func (c *Client) doJSON(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("newsapi: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	contentType := ""
	if requestBody != nil {
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, bodyReader, query)
}

// doForm performs a form-encoded POST. The auth service's login
// endpoint is the only consumer — it follows the OAuth2 password
// grant convention rather than the JSON used everywhere else.
func (c *Client) doForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), nil)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("newsapi: creating request: %w", err)
	}

	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if c.tokenSource != nil {
		if accessToken := c.tokenSource.AccessToken(); accessToken != "" {
			request.Header.Set("Authorization", "Bearer "+accessToken)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("newsapi: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("newsapi: reading response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	apiErr := parseAPIError(response.StatusCode, responseBody)
	c.logger.Debug("api error response",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"detail", apiErr.Detail,
	)
	return nil, apiErr
}
