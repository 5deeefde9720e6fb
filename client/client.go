// Package client is the transport behind the Schematics service methods.
//
// It takes the request descriptors produced by the operation package and
// performs them: authentication, throttling, retries, body encoding,
// response decoding and error mapping all happen here.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/IBM/schematics-go-sdk/auth"
	"github.com/IBM/schematics-go-sdk/core"
	"github.com/IBM/schematics-go-sdk/operation"
)

// Defaults applied by New.
const (
	DefaultTimeout          = 60 * time.Second
	DefaultRetryMaxInterval = 30 * time.Second
	DefaultUserAgent        = "schematics-go-sdk"
	retryMinInterval        = time.Second
)

// Client performs request descriptors against a Schematics endpoint.
type Client struct {
	baseURL   string
	auth      auth.Strategy
	http      *retryablehttp.Client
	throttle  Throttle
	logger    *core.Logger
	metrics   *Metrics
	tracer    trace.Tracer
	userAgent string
	timeout   time.Duration

	convertDates bool
}

type config struct {
	httpClient       *http.Client
	timeout          time.Duration
	maxRetries       int
	retryMaxInterval time.Duration
	throttle         Throttle
	debug            bool
	slog             *slog.Logger
	registerer       prometheus.Registerer
	tracerProvider   trace.TracerProvider
	userAgent        string
	convertDates     bool
}

// Option configures a Client.
type Option func(*config)

// WithRetries enables automatic retries of connection errors, 429 and 5xx
// responses, up to maxRetries extra attempts with exponential backoff capped
// at maxInterval. Retry-After is honoured. Retries are off by default.
func WithRetries(maxRetries int, maxInterval time.Duration) Option {
	return func(c *config) {
		c.maxRetries = maxRetries
		c.retryMaxInterval = maxInterval
	}
}

// WithoutRetries disables automatic retries.
func WithoutRetries() Option {
	return func(c *config) {
		c.maxRetries = 0
	}
}

// WithThrottle enables a client-side sliding-window throttle.
func WithThrottle(limit int, window time.Duration) Option {
	return func(c *config) {
		c.throttle = NewSlidingWindowThrottle(limit, window)
	}
}

// WithCustomThrottle installs a caller-provided throttle.
func WithCustomThrottle(t Throttle) Option {
	return func(c *config) {
		c.throttle = t
	}
}

// WithTimeout sets the per-attempt HTTP timeout (default 60s). It has no
// effect on a client supplied with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the pooled HTTP client used underneath the retry layer.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.httpClient = hc
	}
}

// WithDebug enables debug logging of requests and retries.
func WithDebug(enabled bool) Option {
	return func(c *config) {
		c.debug = enabled
	}
}

// WithLogger routes SDK logs through l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.slog = l
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = reg
	}
}

// WithTracerProvider sets the provider for client spans (default: the global one).
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithUserAgent sets the User-Agent sent when a request carries none.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithConvertDates converts timestamp fields in JSON results to time.Time.
func WithConvertDates(enabled bool) Option {
	return func(c *config) {
		c.convertDates = enabled
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, strategy auth.Strategy, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if strategy == nil {
		return nil, errors.New("auth strategy is required")
	}

	cfg := &config{
		timeout:          DefaultTimeout,
		retryMaxInterval: DefaultRetryMaxInterval,
		userAgent:        DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		auth:         strategy,
		throttle:     cfg.throttle,
		logger:       core.NewSlogLogger(cfg.debug, cfg.slog),
		userAgent:    cfg.userAgent,
		timeout:      cfg.timeout,
		convertDates: cfg.convertDates,
	}
	if c.throttle == nil {
		c.throttle = noThrottle{}
	}

	if cfg.registerer != nil {
		m, err := NewMetrics(cfg.registerer)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		c.metrics = m
	}

	tp := cfg.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	c.tracer = tp.Tracer(tracerName)

	hc := cfg.httpClient
	if hc == nil {
		hc = cleanhttp.DefaultPooledClient()
		hc.Timeout = cfg.timeout
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = hc
	rc.Logger = c.logger
	rc.RetryMax = max(cfg.maxRetries, 0)
	rc.RetryWaitMax = cfg.retryMaxInterval
	if rc.RetryWaitMax <= 0 {
		rc.RetryWaitMax = DefaultRetryMaxInterval
	}
	rc.RetryWaitMin = min(retryMinInterval, rc.RetryWaitMax)
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt == 0 {
			return
		}
		c.logger.Retry(req.Method, req.URL.String(), attempt)
		c.metrics.retried(operationFromContext(req.Context()))
	}
	c.http = rc

	return c, nil
}

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Throttle returns the client's throttle.
func (c *Client) Throttle() Throttle {
	return c.throttle
}

// RetryMax returns the configured number of retries.
func (c *Client) RetryMax() int {
	return c.http.RetryMax
}

type operationKey struct{}

func operationFromContext(ctx context.Context) string {
	id, _ := ctx.Value(operationKey{}).(string)
	return id
}

// Invoke performs req and returns the response envelope.
//
// Non-2xx responses produce a typed error from core (NotFoundError,
// ConflictError, ...) together with an envelope carrying the status code,
// headers and raw body.
func (c *Client) Invoke(ctx context.Context, req *operation.Request) (*core.DetailedResponse, error) {
	if req == nil {
		return nil, errors.New("nil request descriptor")
	}

	if c.throttle.Remaining() == 0 {
		c.metrics.throttled()
	}
	if err := c.throttle.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("%s: throttle: %w", req.OperationID, err)
	}

	token, err := c.auth.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.OperationID, err)
	}

	url := c.baseURL + req.Path
	if len(req.Query) > 0 {
		url += "?" + req.Query.Encode()
	}

	ctx = context.WithValue(ctx, operationKey{}, req.OperationID)
	ctx, span := c.startSpan(ctx, req.OperationID, req.Method, url)

	var rbody any
	if body != nil {
		rbody = body
	}
	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, url, rbody)
	if err != nil {
		endSpan(span, 0, err)
		return nil, fmt.Errorf("%s: creating request: %w", req.OperationID, err)
	}
	c.applyHeaders(ctx, httpReq.Request, req.Header, token, contentType)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		err = c.transportError(ctx, req.OperationID, err, elapsed)
		c.metrics.observe(req.OperationID, req.Method, 0, elapsed)
		c.logger.Error("request failed", "operation", req.OperationID, "error", err)
		endSpan(span, 0, err)
		return nil, err
	}
	defer resp.Body.Close()

	c.metrics.observe(req.OperationID, req.Method, resp.StatusCode, elapsed)
	c.logger.Timing(req.OperationID, req.Method, url, resp.StatusCode, elapsed)

	detailed, err := c.readResponse(resp)
	endSpan(span, resp.StatusCode, err)
	return detailed, err
}

// applyHeaders copies the descriptor headers and fills in what the transport
// owns. Headers already on the descriptor are never overwritten.
func (c *Client) applyHeaders(ctx context.Context, r *http.Request, h http.Header, token, contentType string) {
	for k, vs := range h {
		r.Header[k] = append([]string(nil), vs...)
	}
	if contentType != "" && r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", contentType)
	}
	if r.Header.Get("Authorization") == "" {
		c.auth.ApplyAuth(r, token)
	}
	if r.Header.Get("User-Agent") == "" && c.userAgent != "" {
		r.Header.Set("User-Agent", c.userAgent)
	}
	if r.Header.Get("X-Request-Id") == "" {
		r.Header.Set("X-Request-Id", uuid.NewString())
	}
	injectTraceHeaders(ctx, r.Header)
}

// transportError maps a failed round trip. A deadline on the caller's context
// reports the time spent waiting; an HTTP client timeout reports the
// configured per-attempt timeout.
func (c *Client) transportError(ctx context.Context, operationID string, err error, elapsed time.Duration) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return core.NewTimeoutError(int(elapsed.Milliseconds()), err)
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return core.NewTimeoutError(int(c.timeout.Milliseconds()), err)
	}
	return fmt.Errorf("%s: %w", operationID, err)
}

func (c *Client) readResponse(resp *http.Response) (*core.DetailedResponse, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	detailed := &core.DetailedResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		RawResult:  raw,
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body = io.NopCloser(bytes.NewReader(raw))
		return detailed, core.ParseErrorResponse(resp)
	}

	if len(raw) == 0 {
		return detailed, nil
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !isJSON(contentType) {
		detailed.Result = string(raw)
		return detailed, nil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		if contentType == "" {
			detailed.Result = string(raw)
			return detailed, nil
		}
		return detailed, fmt.Errorf("decoding response: %w", err)
	}
	if c.convertDates {
		result = core.ConvertTimestamps(result)
	}
	detailed.Result = result
	return detailed, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
