package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/election-gateway/internal/credentials"
	"github.com/preston-bernstein/election-gateway/internal/metrics"
)

// Config controls how the gateway reaches the external API. Timeout is required.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Recorder   *metrics.Recorder
}

// Client performs exactly one external API call per gateway function. It never retries.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient httpDoer
	metrics    *metrics.Recorder
	group      singleflight.Group
}

// Response is a successful mutation answer relayed verbatim.
type Response struct {
	Status int
	Body   json.RawMessage
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		return nil, ErrTimeoutRequired
	}
	base := normalizeBaseURL(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("upstream: base url is required")
	}
	return &Client{
		baseURL:    base,
		timeout:    cfg.Timeout,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		metrics:    cfg.Recorder,
	}, nil
}

type call struct {
	endpoint string
	method   string
	path     string
	creds    credentials.Provider
	body     []byte
}

// do issues the request under the configured timeout and returns the buffered body.
// Non-2xx statuses come back as *UpstreamError alongside the raw body.
func (c *Client) do(ctx context.Context, cl call) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	var opts []credentials.Option
	if cl.body != nil {
		body = bytes.NewReader(cl.body)
	} else {
		opts = append(opts, credentials.WithoutContentType())
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("upstream %s: build request: %w", cl.endpoint, err)
	}
	creds := cl.creds
	if creds == nil {
		creds = credentials.Anonymous
	}
	for key, values := range creds.Headers(opts...) {
		req.Header[key] = values
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamCall(cl.endpoint, 0, time.Since(start), err)
		return 0, nil, fmt.Errorf("upstream %s: %w", cl.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.RecordUpstreamCall(cl.endpoint, resp.StatusCode, time.Since(start), err)
		return resp.StatusCode, nil, fmt.Errorf("upstream %s: read body: %w", cl.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		uErr := &UpstreamError{
			Endpoint: cl.endpoint,
			Status:   resp.StatusCode,
			Message:  messageFromBody(raw),
		}
		c.metrics.RecordUpstreamCall(cl.endpoint, resp.StatusCode, time.Since(start), uErr)
		return resp.StatusCode, raw, uErr
	}

	c.metrics.RecordUpstreamCall(cl.endpoint, resp.StatusCode, time.Since(start), nil)
	return resp.StatusCode, raw, nil
}

func getJSON[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var out T
	cl.method = http.MethodGet
	_, raw, err := c.do(ctx, cl)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("upstream %s: decode: %w", cl.endpoint, err)
	}
	return out, nil
}

// getCollection treats any non-array body as an empty collection.
func getCollection[T any](ctx context.Context, c *Client, cl call) ([]T, error) {
	cl.method = http.MethodGet
	_, raw, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	items, err := decodeCollection[T](raw)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: decode: %w", cl.endpoint, err)
	}
	return items, nil
}

func decodeCollection[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) mutate(ctx context.Context, cl call) (Response, error) {
	status, raw, err := c.do(ctx, cl)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: status, Body: relayable(raw)}, nil
}

// relayable keeps a success body only if it is valid JSON.
func relayable(raw []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil
	}
	return json.RawMessage(trimmed)
}
