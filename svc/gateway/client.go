package gateway

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

	"github.com/classtym/campaign/pkg/logger"
	"github.com/classtym/campaign/pkg/requestid"
	"github.com/classtym/campaign/pkg/sanitizer"
)

// maxResponseBody caps how much of a 2xx body is read.
const maxResponseBody = 1 << 20

// Client calls the upstream API with JSON bodies and bearer auth.
// Responses are never cached and failed calls are never retried.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client. No timeout is imposed by default;
// calls are bounded only by the caller's context.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTokenSource overrides the token source built from Config.
func WithTokenSource(ts TokenSource) Option {
	return func(cl *Client) {
		if ts != nil {
			cl.tokens = ts
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.log = l
		}
	}
}

// New builds a Client. It fails with ErrMissingBaseURL when no base URL
// is configured.
func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		baseURL: strings.TrimSpace(cfg.BaseURL),
		http:    &http.Client{Transport: requestid.Transport(http.DefaultTransport)},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.tokens == nil {
		ts, err := NewTokenSource(cfg, c.http)
		if err != nil {
			return nil, err
		}
		c.tokens = ts
	}

	return c, nil
}

// CallOption configures a single call.
type CallOption func(*callOptions)

type callOptions struct {
	headers map[string]string
}

// WithHeader adds a header to the call. Content-Type cannot be overridden.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if key != "" {
			o.headers[key] = sanitizer.PreventHeaderInjection(value)
		}
	}
}

// WithHeaders adds multiple headers to the call.
func WithHeaders(headers map[string]string) CallOption {
	return func(o *callOptions) {
		for k, v := range headers {
			if k != "" {
				o.headers[k] = sanitizer.PreventHeaderInjection(v)
			}
		}
	}
}

// AuthHeaders returns the Authorization header for a fresh token.
func (c *Client) AuthHeaders(ctx context.Context) (map[string]string, error) {
	tok, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	if tok == nil || tok.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty token", ErrToken)
	}
	return map[string]string{"Authorization": tok.Type() + " " + tok.AccessToken}, nil
}

// Call sends body as JSON to endpoint and returns the raw JSON response.
// A nil body sends no payload. Auth headers are attached unless the caller
// supplies its own Authorization header.
//
// Non-2xx responses fail with *ValidationError or *OpaqueError; network
// failures wrap ErrTransport.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any, opts ...CallOption) (json.RawMessage, error) {
	o := &callOptions{headers: make(map[string]string)}
	for _, opt := range opts {
		opt(o)
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, resolveURL(c.baseURL, endpoint), payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	if _, ok := o.headers["Authorization"]; !ok {
		auth, err := c.AuthHeaders(ctx)
		if err != nil {
			return nil, err
		}
		for k, v := range auth {
			req.Header.Set(k, v)
		}
	}
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "upstream call failed",
			logger.Component("gateway"),
			logger.Upstream(method, endpoint, 0),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxFailureBody))
		failure := classifyFailure(resp.StatusCode, text)
		c.log.WarnContext(ctx, "upstream call rejected",
			logger.Component("gateway"),
			logger.Upstream(method, endpoint, resp.StatusCode),
			logger.Duration(time.Since(start)),
			logger.Error(failure),
		)
		return nil, failure
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	c.log.DebugContext(ctx, "upstream call",
		logger.Component("gateway"),
		logger.Upstream(method, endpoint, resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(data) {
		return nil, ErrInvalidResponse
	}
	return json.RawMessage(data), nil
}

// Fetch calls endpoint and decodes the response into T.
func Fetch[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts ...CallOption) (T, error) {
	var out T
	raw, err := c.Call(ctx, method, endpoint, body, opts...)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return out, nil
}

// resolveURL joins base and endpoint with exactly one slash. Absolute
// endpoints are returned unchanged.
func resolveURL(base, endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}
