// Package client is a typed HTTP client for the Streambase API. GET responses
// are cached in memory per path and served from cache until a mutation touches
// the same resource family.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("not found")

// APIError carries a non-2xx response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client talks to a Streambase server.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	cache map[string][]byte
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches path, serving from the cache when possible, and decodes the
// body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	c.mu.RLock()
	cached, ok := c.cache[path]
	c.mu.RUnlock()
	if ok {
		return json.Unmarshal(cached, out)
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[path] = body
	c.mu.Unlock()

	return json.Unmarshal(body, out)
}

// mutate issues a write request and drops every cached response whose path
// starts with one of the given prefixes.
func (c *Client) mutate(ctx context.Context, method, path string, in, out any, invalidate ...string) error {
	body, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}

	c.invalidatePrefixes(invalidate)

	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

func (c *Client) invalidatePrefixes(prefixes []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.cache {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.cache, key)
				break
			}
		}
	}
}

// ClearCache drops all cached GET responses.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string][]byte)
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &errBody) == nil {
			if errBody.Message != "" {
				msg = errBody.Message
			} else if errBody.Error != "" {
				msg = errBody.Error
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return body, nil
}
