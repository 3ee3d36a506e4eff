// Package apiclient is a small JSON client for the resume backend. It classifies
// every failure as a NetworkError, HTTPError or ParseError and never retries.
package apiclient

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

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/metrics"
)

const (
	DefaultPrefix   = "/api/v1"
	HeaderRequestID = "X-Request-ID"

	snippetLimit = 256
)

type Options struct {
	BaseURL        string
	Prefix         string
	DefaultHeaders map[string]string
	// Timeout applies to every call that does not set its own. Zero means none.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     logger.Logger
}

// Client is immutable after New and safe for concurrent use.
type Client struct {
	baseURL string
	prefix  string
	headers http.Header
	timeout time.Duration
	http    *http.Client
	logger  logger.Logger
	tracer  trace.Tracer
}

func New(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", opts.BaseURL)
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	prefix = "/" + strings.Trim(prefix, "/")

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	for k, v := range opts.DefaultHeaders {
		headers.Set(k, v)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(base.String(), "/"),
		prefix:  prefix,
		headers: headers,
		timeout: opts.Timeout,
		http:    httpClient,
		logger:  log.With(zap.String("component", "apiclient")),
		tracer:  otel.Tracer("github.com/khoahotran/resume-portal/pkg/apiclient"),
	}, nil
}

// Prefix returns the API prefix every path must start with.
func (c *Client) Prefix() string {
	return c.prefix
}

type callConfig struct {
	timeout time.Duration
	headers http.Header
}

type CallOption func(*callConfig)

// WithTimeout bounds a single call.
func WithTimeout(d time.Duration) CallOption {
	return func(cc *callConfig) { cc.timeout = d }
}

func WithHeader(key, value string) CallOption {
	return func(cc *callConfig) { cc.headers.Set(key, value) }
}

func (c *Client) Get(ctx context.Context, path string, params Params, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out, opts)
}

func (c *Client) Post(ctx context.Context, path string, params Params, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPost, path, params, body, out, opts)
}

func (c *Client) Put(ctx context.Context, path string, params Params, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPut, path, params, body, out, opts)
}

func (c *Client) Delete(ctx context.Context, path string, params Params, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, path, params, nil, out, opts)
}

// GetJSON decodes the response into a fresh T.
func GetJSON[T any](ctx context.Context, c *Client, path string, params Params, opts ...CallOption) (T, error) {
	var out T
	err := c.Get(ctx, path, params, &out, opts...)
	return out, err
}

func PostJSON[T any](ctx context.Context, c *Client, path string, params Params, body any, opts ...CallOption) (T, error) {
	var out T
	err := c.Post(ctx, path, params, body, &out, opts...)
	return out, err
}

func PutJSON[T any](ctx context.Context, c *Client, path string, params Params, body any, opts ...CallOption) (T, error) {
	var out T
	err := c.Put(ctx, path, params, body, &out, opts...)
	return out, err
}

func DeleteJSON[T any](ctx context.Context, c *Client, path string, params Params, opts ...CallOption) (T, error) {
	var out T
	err := c.Delete(ctx, path, params, &out, opts...)
	return out, err
}

func (c *Client) buildURL(path string, params Params) (string, error) {
	if !c.hasPrefix(path) {
		return "", fmt.Errorf("%w: %q does not start with %q", ErrInvalidPath, path, c.prefix)
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	query := u.Query()
	for k, vs := range params.Values() {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (c *Client) hasPrefix(path string) bool {
	if !strings.HasPrefix(path, c.prefix) {
		return false
	}
	rest := path[len(c.prefix):]
	return rest == "" || rest[0] == '/' || rest[0] == '?'
}

func (c *Client) do(ctx context.Context, method, path string, params Params, body, out any, opts []CallOption) (err error) {
	cc := callConfig{timeout: c.timeout, headers: http.Header{}}
	for _, opt := range opts {
		opt(&cc)
	}

	fullURL, err := c.buildURL(path, params)
	if err != nil {
		return err
	}

	if cc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cc.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", fullURL),
		),
	)
	start := time.Now()
	defer func() {
		outcome := Outcome(err)
		metrics.RecordBackendRequest(method, outcome, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
			c.logger.Warn("backend request failed",
				zap.String("method", method),
				zap.String("url", fullURL),
				zap.String("outcome", outcome),
				zap.Error(err),
			)
		} else {
			c.logger.Debug("backend request",
				zap.String("method", method),
				zap.String("url", fullURL),
				zap.Duration("latency", time.Since(start)),
			)
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("encode request body: %w", marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	for k, vs := range c.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range cc.headers {
		req.Header[k] = append([]string(nil), vs...)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if req.Header.Get(HeaderRequestID) == "" {
		id := RequestIDFromContext(ctx)
		if id == "" {
			id = uuid.NewString()
		}
		req.Header.Set(HeaderRequestID, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Method: method, URL: fullURL, StatusCode: resp.StatusCode, RawBody: raw}
		var parsed any
		if len(bytes.TrimSpace(raw)) > 0 && json.Unmarshal(raw, &parsed) == nil {
			httpErr.Body = parsed
		}
		return httpErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{Method: method, URL: fullURL, Err: err, Snippet: snippet(raw)}
	}
	return nil
}

func snippet(raw []byte) string {
	if len(raw) <= snippetLimit {
		return string(raw)
	}
	return string(raw[:snippetLimit])
}

type requestIDKey struct{}

// ContextWithRequestID makes outgoing calls reuse id instead of minting a new one.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
