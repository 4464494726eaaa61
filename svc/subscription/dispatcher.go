package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// TokenProvider yields a bearer token for authenticating remote dispatches.
// It is consumed as an opaque async credential source.
type TokenProvider func(ctx context.Context) (string, error)

// LocalDispatcher applies a batch directly to an in-process registry.
type LocalDispatcher struct {
	registry *Registry
}

// NewLocalDispatcher creates a dispatcher writing straight to registry.
func NewLocalDispatcher(registry *Registry) (*LocalDispatcher, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	return &LocalDispatcher{registry: registry}, nil
}

// Dispatch upserts each batch record into the registry in order, stopping at
// the first failure. Records applied before the failure remain applied; the
// error reports how far the batch got.
func (d *LocalDispatcher) Dispatch(ctx context.Context, batch Batch) (int, error) {
	applied := 0
	for _, rec := range batch.Records {
		if err := d.registry.Upsert(ctx, rec); err != nil {
			return applied, fmt.Errorf("upsert %q after %d applied: %w", rec.ID, applied, err)
		}
		applied++
	}
	return applied, nil
}

// RemoteDispatcher posts a batch to a remote subscription-creation endpoint,
// authenticated with a bearer token from the credential provider. It carries
// no internal timeout or retry; cancellation and deadlines come from the
// caller's context and the HTTP client.
type RemoteDispatcher struct {
	endpoint   string
	httpClient *http.Client
	tokens     TokenProvider
}

// RemoteDispatcherOption configures a RemoteDispatcher.
type RemoteDispatcherOption func(*RemoteDispatcher)

// WithDispatcherHTTPClient sets a custom HTTP client, ignoring nil for safety.
func WithDispatcherHTTPClient(hc *http.Client) RemoteDispatcherOption {
	return func(d *RemoteDispatcher) {
		if hc != nil {
			d.httpClient = hc
		}
	}
}

// NewRemoteDispatcher creates a dispatcher for the given endpoint and
// credential provider.
func NewRemoteDispatcher(endpoint string, tokens TokenProvider, opts ...RemoteDispatcherOption) (*RemoteDispatcher, error) {
	if endpoint == "" {
		return nil, errors.New("subscription endpoint URL is required")
	}
	if tokens == nil {
		return nil, errors.New("credential provider is required")
	}

	d := &RemoteDispatcher{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

type dispatchResponse struct {
	Created int `json:"created"`
}

// Dispatch posts the batch and returns the created count the endpoint
// reports. Any transport failure, credential failure, or non-success status
// is a rejection of the whole batch.
func (d *RemoteDispatcher) Dispatch(ctx context.Context, batch Batch) (int, error) {
	token, err := d.tokens(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire credential: %w", err)
	}
	if token == "" {
		return 0, ErrMissingToken
	}

	body, err := json.Marshal(batch)
	if err != nil {
		return 0, fmt.Errorf("encode batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("post batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("subscription endpoint returned status %d", resp.StatusCode)
	}

	var out dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// A success status with an unreadable body still counts as applied;
		// the converter falls back to the flagged-item count.
		return 0, nil
	}
	return out.Created, nil
}
