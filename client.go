// Package wapy is a client for the Walmart Open API. It builds signed-free
// GET requests against the v1 endpoints, decodes the JSON responses, and
// exposes them as Product and ProductReview values whose accessors fail soft:
// a field the API did not return reads as nil rather than an error.
package wapy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the Walmart Open API v1 base URL.
	DefaultBaseURL = "http://api.walmartlabs.com/v1"
)

// Config carries the client construction parameters.
type Config struct {
	// APIKey is the Walmart Open API key. Required.
	APIKey string
	// LinkShareID is the affiliate tracking id interpolated into product
	// tracking URLs. Optional; without it Product.TrackingURL returns
	// ErrNoLinkShareID.
	LinkShareID string
	// BaseURL overrides DefaultBaseURL, mostly for tests.
	BaseURL string
	// HTTPClient overrides the default transport.
	HTTPClient *http.Client
}

// Client calls Walmart Open APIs.
type Client struct {
	apiKey      string
	linkShareID string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a Walmart Open API client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("API key is required")
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}

	return &Client{
		apiKey:      cfg.APIKey,
		linkShareID: strings.TrimSpace(cfg.LinkShareID),
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  httpClient,
	}, nil
}

// get performs one synchronous GET against path and returns the decoded JSON
// document. The api key and format=json are always injected, and
// richAttributes defaults to true unless the caller already set it.
func (c *Client) get(ctx context.Context, operation, path string, params url.Values) (gjson.Result, error) {
	endpoint, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("parse %s URL: %w", operation, err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)
	params.Set("format", "json")
	if params.Get("richAttributes") == "" {
		params.Set("richAttributes", "true")
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("request %s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil { // ensure body is fully read for connection reuse
		return gjson.Result{}, fmt.Errorf("read %s response: %w", operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := newStatusError(operation, resp.StatusCode, strings.TrimSpace(buf.String()))
		slog.ErrorContext(ctx, "received Walmart error response",
			"operation", operation,
			"status", resp.StatusCode,
			"code", statusErr.Code,
		)
		return gjson.Result{}, statusErr
	}

	if !gjson.ValidBytes(buf.Bytes()) {
		return gjson.Result{}, fmt.Errorf("%s request succeeded but response was not valid JSON: %s", operation, strings.TrimSpace(buf.String()))
	}

	return gjson.ParseBytes(buf.Bytes()), nil
}

// products maps a JSON array onto Product values, preserving order. An empty
// array maps to an empty slice.
func (c *Client) products(items gjson.Result) []Product {
	return lo.Map(items.Array(), func(item gjson.Result, _ int) Product {
		return newProduct(item, c.linkShareID)
	})
}
