package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"
)

// Client implements Checker over HTTP.
// Concurrent checks for the same id set are collapsed into a single upstream
// request to avoid hammering the endpoint from parallel UI refreshes.
type Client struct {
	endpoint   string
	httpClient *http.Client
	sfg        singleflight.Group
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client, ignoring nil for safety.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates an availability client for the configured endpoint.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.EndpointURL == "" {
		return nil, ErrMissingEndpoint
	}

	c := &Client{
		endpoint:   cfg.EndpointURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type checkRequest struct {
	IDs []string `json:"ids"`
}

// Check posts the id batch to the upstream endpoint and returns its stock rows.
// An empty id set short-circuits to an empty result without a network call.
func (c *Client) Check(ctx context.Context, ids []string) ([]Stock, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	// Collapse concurrent identical batches; the key is order-insensitive.
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	key := strings.Join(sorted, "\x00")

	v, err, _ := c.sfg.Do(key, func() (any, error) {
		return c.check(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Stock), nil
}

func (c *Client) check(ctx context.Context, ids []string) ([]Stock, error) {
	body, err := json.Marshal(checkRequest{IDs: ids})
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Join(ErrUnexpectedStatus, fmt.Errorf("status %d", resp.StatusCode))
	}

	var stocks []Stock
	if err := json.NewDecoder(resp.Body).Decode(&stocks); err != nil {
		return nil, errors.Join(ErrInvalidResponse, err)
	}
	return stocks, nil
}
