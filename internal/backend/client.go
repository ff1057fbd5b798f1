// Package backend is the HTTP client for the portfolio REST API. The API owns
// every record the site displays; this package only moves JSON back and forth.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single backend round trip.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Client talks to the portfolio API rooted at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client with its own http.Client using the given timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a client that sends requests through hc.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AssetURL resolves a path stored by the backend into a URL the browser can
// load. Relative paths are served from the API's static root, absolute URLs
// pass through and an empty path stays empty.
func (c *Client) AssetURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "data:") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// call describes one API round trip.
type call struct {
	method      string
	path        string
	token       string
	contentType string
	body        io.Reader
}

// do sends the call and decodes a JSON response into out when out is non-nil.
// Non-2xx responses are returned as *Error.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, cl.body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "backend request failed", "method", cl.method, "path", cl.path, "error", err)
		return fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "backend request",
		"method", cl.method,
		"path", cl.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

// get fetches path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, token: token}, out)
}

// sendJSON encodes in as the request body.
func (c *Client) sendJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, call{method: method, path: path, token: token, contentType: contentType, body: body}, out)
}
