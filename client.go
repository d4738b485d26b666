// Copyright 2021 The Column Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package column

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/zvsdev/column-go/internal/version"
	"github.com/zvsdev/column-go/x/trace"

	"github.com/go-kit/kit/log"
	"github.com/moov-io/base"
	"github.com/opentracing/opentracing-go"
)

// Environment is Column's environment an API key belongs to. It's parsed
// from the key's prefix at construction and recorded for callers to inspect,
// but it never changes how requests are made.
type Environment string

const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

func parseEnvironment(apiKey string) (Environment, error) {
	if strings.HasPrefix(apiKey, "test_") {
		return EnvironmentTest, nil
	}
	if strings.HasPrefix(apiKey, "live_") {
		return EnvironmentLive, nil
	}
	return Environment(""), ErrInvalidAPIKey
}

var (
	// columnEndpoint overrides the production address, mostly for sandboxes
	// and proxies. Example: https://api.column.eu.example.com
	columnEndpoint = os.Getenv("COLUMN_ENDPOINT")

	columnHttpClient = &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			MaxConnsPerHost:     100,
			IdleConnTimeout:     1 * time.Minute,
		},
	}
)

const productionAddress = "https://api.column.com"

// Client is a typed client for Column's banking API.
//
// A Client holds only immutable configuration and an *http.Client, so a
// single instance is safe for concurrent use. Deadlines and cancellation
// come from the context passed to each operation; nothing is retried.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	env      Environment

	logger log.Logger
}

// NewClient returns a Client ready to call the Column API.
//
// The API key must be prefixed with "test_" or "live_", anything else fails
// with ErrInvalidAPIKey. An empty endpoint falls back to COLUMN_ENDPOINT and
// then Column's production address. A nil httpClient uses a shared pooled
// client with a 10s timeout; pass your own to control timeouts or TLS.
func NewClient(logger log.Logger, apiKey string, endpoint string, httpClient *http.Client) (*Client, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	env, err := parseEnvironment(apiKey)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		endpoint = columnEndpoint
	}
	if endpoint == "" {
		endpoint = productionAddress
	}
	if httpClient == nil {
		httpClient = columnHttpClient
	}
	logger.Log("column", fmt.Sprintf("using %s for Column address", endpoint), "environment", env)
	return &Client{
		client:   httpClient,
		endpoint: endpoint,
		apiKey:   apiKey,
		env:      env,
		logger:   logger,
	}, nil
}

// Environment reports whether the Client's API key is a test or live key.
func (c *Client) Environment() Environment {
	return c.env
}

// NewIdempotencyKey returns a random key suitable for
// BookTransferCreateParams.IdempotencyKey.
func NewIdempotencyKey() string {
	return base.ID()
}

func (c *Client) addRequestHeaders(r *http.Request) {
	r.Header.Set("User-Agent", fmt.Sprintf("column-go/%s", version.Version))
	r.Header.Set("Accept", "application/json")
	r.SetBasicAuth("", c.apiKey)
}

// buildAddress takes c.endpoint's path and joins it with p to use
// as the full URL for an http.Client request.
func (c *Client) buildAddress(p string) string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return ""
	}
	if u.Scheme == "" {
		c.logger.Log("column", fmt.Sprintf("invalid endpoint=%s", u.String()))
		return ""
	}
	u.Path = path.Join(u.Path, p)
	return u.String()
}

// do performs one round trip for operation and decodes the response into v
// (when non-nil) through handleResponse. body is JSON encoded when non-nil
// and idempotencyKey is sent as X-Idempotency-Key when non-empty.
func (c *Client) do(ctx context.Context, operation, method, relPath string, query url.Values, body interface{}, idempotencyKey string, v interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding %s request: %v", operation, err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildAddress(relPath), &buf)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	c.addRequestHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	span, _ := opentracing.StartSpanFromContext(ctx, operation)
	defer span.Finish()
	req = trace.DecorateHttpRequest(req, span)

	start := time.Now()
	resp, err := c.client.Do(req)
	trackDuration(operation, time.Since(start))
	if err != nil {
		c.trackError(operation)
		return fmt.Errorf("%s %s: %v", method, relPath, err)
	}
	defer resp.Body.Close()

	if err := handleResponse(resp, v); err != nil {
		c.trackError(operation)
		return err
	}
	return nil
}

func (c *Client) get(ctx context.Context, operation, relPath string, query url.Values, v interface{}) error {
	return c.do(ctx, operation, "GET", relPath, query, nil, "", v)
}

func (c *Client) post(ctx context.Context, operation, relPath string, body interface{}, idempotencyKey string, v interface{}) error {
	return c.do(ctx, operation, "POST", relPath, nil, body, idempotencyKey, v)
}

func (c *Client) put(ctx context.Context, operation, relPath string, body interface{}, v interface{}) error {
	return c.do(ctx, operation, "PUT", relPath, nil, body, "", v)
}

func (c *Client) delete(ctx context.Context, operation, relPath string) error {
	return c.do(ctx, operation, "DELETE", relPath, nil, nil, "", nil)
}
