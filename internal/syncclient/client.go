// Package syncclient provides an HTTP client for the Spendly sync API.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"spendly/internal/assistant"
	"spendly/internal/snapshot"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (%s, status %d)", e.Message, e.Code, e.StatusCode)
}

// Options configure a Client. Zero values mean no token and no retries.
type Options struct {
	Token      string
	Retries    uint64
	HTTPClient *http.Client
}

// Client communicates with the Spendly sync API.
type Client struct {
	baseURL    string
	token      string
	retries    uint64
	httpClient *http.Client
}

// New creates a new sync API client.
func New(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      opts.Token,
		retries:    opts.Retries,
		httpClient: httpClient,
	}
}

// Push uploads a snapshot and returns the per-kind counts the server upserted.
func (c *Client) Push(ctx context.Context, req *snapshot.PushRequest) (*snapshot.SyncedCounts, error) {
	var result snapshot.PushResponse
	if err := c.do(ctx, http.MethodPost, "/api/sync", req, &result); err != nil {
		return nil, fmt.Errorf("pushing snapshot: %w", err)
	}
	return &result.Synced, nil
}

// Pull downloads the user's remote data set. userID may be empty when the
// server derives identity from the session token.
func (c *Client) Pull(ctx context.Context, userID string) (*snapshot.Data, error) {
	path := "/api/sync"
	if userID != "" {
		path += "?userId=" + url.QueryEscape(userID)
	}

	var result snapshot.PullResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("pulling snapshot: %w", err)
	}
	result.Data.Normalize()
	return &result.Data, nil
}

// Chat asks the assistant a question, optionally sharing the local data.
func (c *Client) Chat(ctx context.Context, message string, history []assistant.Message, data *snapshot.Data) (string, error) {
	body := struct {
		Message  string              `json:"message"`
		History  []assistant.Message `json:"history,omitempty"`
		Snapshot *snapshot.Data      `json:"snapshot,omitempty"`
	}{Message: message, History: history, Snapshot: data}

	var result struct {
		Reply string `json:"reply"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &result); err != nil {
		return "", fmt.Errorf("asking assistant: %w", err)
	}
	return result.Reply, nil
}

// do sends one request, retrying transport failures and 5xx responses up
// to c.retries times. Client errors are returned immediately.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
	}

	op := func() error {
		err := c.once(ctx, method, path, payload, out)
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}

	if c.retries == 0 {
		return unwrapPermanent(op())
	}
	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries)
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}

func (c *Client) once(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

func unwrapPermanent(err error) error {
	if perm, ok := err.(*backoff.PermanentError); ok {
		return perm.Err
	}
	return err
}
