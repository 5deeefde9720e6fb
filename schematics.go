// Package schematics provides a Go SDK for the IBM Cloud Schematics API.
//
// This SDK provides:
//   - One typed method per Schematics operation, built from an operation table
//   - Bearer, basic and no-op authentication
//   - Optional retries with exponential backoff (off by default)
//   - Proactive rate limiting with a sliding window throttle
//   - Typed errors for remote failures
//   - Prometheus metrics, OpenTelemetry spans and debug logging
//   - Timestamp conversion in results (ISO strings to time.Time)
//
// Basic usage:
//
//	svc, err := schematics.New(
//	    schematics.WithBearerToken(os.Getenv("SCHEMATICS_BEARER_TOKEN")),
//	    schematics.WithRegion("us-south"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := svc.GetWorkspace(ctx, schematicsv1.NewGetWorkspaceOptions("us-south.workspace.demo.1a2b3c4d"))
//
// With retries and debug logging:
//
//	svc, err := schematics.New(
//	    schematics.WithBearerToken(token),
//	    schematics.WithRetries(4, 30*time.Second),
//	    schematics.WithDebug(true),
//	)
package schematics

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/IBM/schematics-go-sdk/auth"
	"github.com/IBM/schematics-go-sdk/client"
	"github.com/IBM/schematics-go-sdk/core"
	"github.com/IBM/schematics-go-sdk/schematicsv1"
)

// DefaultServiceURL is the global Schematics endpoint.
const DefaultServiceURL = "https://schematics.cloud.ibm.com"

var regionURLs = map[string]string{
	"us-south": "https://us.schematics.cloud.ibm.com",
	"us-east":  "https://us.schematics.cloud.ibm.com",
	"eu-gb":    "https://eu.schematics.cloud.ibm.com",
	"eu-de":    "https://eu.schematics.cloud.ibm.com",
	"ca-tor":   "https://ca.schematics.cloud.ibm.com",
}

// Client is the Schematics service bound to a transport. All operation
// methods of schematicsv1.SchematicsV1 are available on it.
type Client struct {
	*schematicsv1.SchematicsV1
	transport *client.Client
}

// Transport returns the underlying transport.
func (c *Client) Transport() *client.Client {
	return c.transport
}

// Re-export types for convenience
type (
	DetailedResponse = core.DetailedResponse

	// Error types
	SchematicsError        = core.SchematicsError
	MissingParametersError = core.MissingParametersError
	RateLimitError         = core.RateLimitError
	AuthenticationError    = core.AuthenticationError
	AuthorizationError     = core.AuthorizationError
	NotFoundError          = core.NotFoundError
	ConflictError          = core.ConflictError
	ValidationError        = core.ValidationError
	TimeoutError           = core.TimeoutError
	ServerError            = core.ServerError

	// Throttle types
	Throttle              = client.Throttle
	SlidingWindowThrottle = client.SlidingWindowThrottle
)

// ErrMissingParameters matches errors for calls rejected before sending.
var ErrMissingParameters = core.ErrMissingParameters

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	strategy   auth.Strategy
	url        string
	region     string
	clientOpts []client.Option
}

// WithBearerToken authenticates with an IAM bearer token.
func WithBearerToken(token string, opts ...auth.BearerOption) Option {
	return func(c *clientConfig) {
		c.strategy = auth.NewBearerTokenStrategy(token, opts...)
	}
}

// WithBasicAuth authenticates with a username and password.
func WithBasicAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.strategy = auth.NewBasicAuthStrategy(username, password)
	}
}

// WithNoAuth sends requests without credentials, e.g. to a local proxy.
func WithNoAuth() Option {
	return func(c *clientConfig) {
		c.strategy = auth.NewNoAuthStrategy()
	}
}

// WithAuth sets a custom authentication strategy.
func WithAuth(s auth.Strategy) Option {
	return func(c *clientConfig) {
		c.strategy = s
	}
}

// WithURL sets the service URL. It takes precedence over WithRegion.
func WithURL(url string) Option {
	return func(c *clientConfig) {
		c.url = url
	}
}

// WithRegion selects the regional endpoint for region.
func WithRegion(region string) Option {
	return func(c *clientConfig) {
		c.region = region
	}
}

// WithRetries enables retries of 429, 5xx and connection errors.
func WithRetries(maxRetries int, maxInterval time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithRetries(maxRetries, maxInterval))
	}
}

// WithoutRetries disables retries. This is the default.
func WithoutRetries() Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithoutRetries())
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithTimeout(d))
	}
}

// WithThrottle enables sliding window throttling of limit requests per window.
func WithThrottle(limit int, window time.Duration) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithThrottle(limit, window))
	}
}

// WithCustomThrottle sets a custom throttle implementation.
func WithCustomThrottle(t Throttle) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithCustomThrottle(t))
	}
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithDebug(enabled))
	}
}

// WithLogger routes SDK logs through l.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithLogger(l))
	}
}

// WithConvertDates enables conversion of timestamp fields to time.Time.
func WithConvertDates(enabled bool) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithConvertDates(enabled))
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithMetrics(reg))
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithTracerProvider(tp))
	}
}

// WithHTTPClient sets the HTTP client used underneath the retry layer.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithHTTPClient(hc))
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.clientOpts = append(c.clientOpts, client.WithUserAgent(ua))
	}
}

// New creates a Schematics client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.strategy == nil {
		return nil, &Error{Message: "no authentication strategy configured; use WithBearerToken, WithBasicAuth or WithNoAuth"}
	}

	url := cfg.url
	if url == "" {
		url = DefaultServiceURL
		if cfg.region != "" {
			var err error
			if url, err = GetServiceURLForRegion(cfg.region); err != nil {
				return nil, err
			}
		}
	}

	transport, err := client.New(url, cfg.strategy, cfg.clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		SchematicsV1: schematicsv1.New(transport),
		transport:    transport,
	}, nil
}

// Error represents a Schematics SDK configuration error.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// GetServiceURLForRegion returns the endpoint serving region.
func GetServiceURLForRegion(region string) (string, error) {
	if err := ValidateRegion(region); err != nil {
		return "", err
	}
	return regionURLs[region], nil
}

// ValidateRegion reports whether region has a Schematics endpoint.
func ValidateRegion(region string) error {
	if region == "" {
		return &Error{Message: "region is required"}
	}
	if _, ok := regionURLs[region]; !ok {
		return &Error{Message: fmt.Sprintf("unknown region %q; known regions: %v", region, Regions())}
	}
	return nil
}

// Regions returns the known regions, sorted.
func Regions() []string {
	regions := make([]string, 0, len(regionURLs))
	for r := range regionURLs {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// Helper functions re-exported from core
var (
	// IsRetryableError returns true if the error should trigger a retry.
	IsRetryableError = core.IsRetryableError

	// StatusCode returns the HTTP status carried by a typed error, or 0.
	StatusCode = core.StatusCode

	// ParseTimestamp parses an ISO 8601 timestamp or date.
	ParseTimestamp = core.ParseTimestamp

	// ConvertTimestamps converts timestamp-keyed strings in a decoded JSON value.
	ConvertTimestamps = core.ConvertTimestamps
)

// Ptr returns a pointer to v, for filling optional option fields.
func Ptr[T any](v T) *T {
	return core.Ptr(v)
}
