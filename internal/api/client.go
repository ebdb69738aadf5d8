package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lettr-com/lettr-go/internal/apierrors"
)

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// Config holds construction parameters for the API client.
type Config struct {
	// BaseURL is the API root, e.g. "https://app.lettr.com/api".
	BaseURL string
	// APIKey is the bearer credential attached to every request.
	APIKey string
	// UserAgent is sent as the User-Agent header.
	UserAgent string
	// HTTPClient, if set, replaces the default transport. Timeout and
	// connection policy belong to it, not to this package.
	HTTPClient *http.Client
	// Timeout is applied to the default transport when HTTPClient is nil.
	Timeout time.Duration
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

// do performs a single API request and decodes the response into result.
//
// On a 2xx status the body is decoded into result (when non-nil); any
// shape mismatch is reported as a DecodeError. On any other status the
// body is parsed as a Lettr error payload. Transport failures surface as
// NetworkError. There is exactly one network call per invocation.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierrors.NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierrors.NetworkError{Err: err, URL: fullURL}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &apierrors.DecodeError{StatusCode: resp.StatusCode, Body: respBody}
		}
	}

	return nil
}
