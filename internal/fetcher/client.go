package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hs-exporter/internal/contextutil"
	"hs-exporter/internal/hscode"
)

// maxErrorBody bounds how much of a failed response body is kept in the error.
const maxErrorBody = 512

// Client downloads the source workbook over HTTP.
// It performs exactly one request per call and never retries.
type Client struct {
	UserAgent string
	client    *http.Client
}

// NewClient creates a Client backed by http.DefaultClient.
func NewClient() *Client {
	return &Client{
		UserAgent: "hs-exporter/1.0",
		client:    http.DefaultClient,
	}
}

// NewClientWithHTTP creates a Client backed by the given http.Client.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	c := NewClient()
	if httpClient != nil {
		c.client = httpClient
	}
	return c
}

// Fetch downloads url and returns the response body.
// Any transport failure or non-2xx status is returned as *hscode.FetchError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &hscode.FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "*/*")

	logger.DebugContext(ctx, "sending request", "url", url)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &hscode.FetchError{URL: url, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	logger.DebugContext(ctx, "received response", "url", url, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &hscode.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(msg),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &hscode.FetchError{URL: url, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	logger.DebugContext(ctx, "download complete", "url", url, "bytes", len(body))
	return body, nil
}
