// Package nimbus provides a thin client for the Nimbus agent-orchestration API.
package nimbus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client issues requests to the Nimbus backend. It is a pass-through client:
// responses come back unmodified and callers interpret status codes. There is
// no retry, no cache, and no timeout beyond the platform default.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Nimbus client with the given base URL and bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Do issues a request to the Nimbus backend and returns the raw response.
// The bearer credential is attached; extra headers override nothing but add
// to the request. The caller owns the response body.
func (c *Client) Do(ctx context.Context, method, path string, header http.Header, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach nimbus: %w", err)
	}
	return resp, nil
}

// Get issues a GET request with no extra headers.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// PostJSON issues a POST request with a JSON content type.
func (c *Client) PostJSON(ctx context.Context, path string, body io.Reader) (*http.Response, error) {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return c.Do(ctx, http.MethodPost, path, header, body)
}
