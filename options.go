package asaas

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	overrides       api.Overrides
	httpClient      *http.Client
	logger          *zerolog.Logger
	registerer      prometheus.Registerer
	tracerProvider  trace.TracerProvider
	requestIDHeader string
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the API key sent on every request.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.overrides.APIKey = &key
	}
}

// WithAPIKeyHeader sets the header that carries the API key.
// Default: "access_token"
func WithAPIKeyHeader(header string) Option {
	return func(c *clientConfig) {
		c.overrides.APIKeyHeader = &header
	}
}

// WithBaseURL sets the API base URL. It takes precedence over the
// environment's URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.overrides.BaseURL = &url
	}
}

// WithEnvironment selects Production or Sandbox.
// Default: Production
func WithEnvironment(env Environment) Option {
	return func(c *clientConfig) {
		c.overrides.Environment = &env
	}
}

// WithTimeout sets the timeout of a single attempt. Zero disables it.
// Default: 10 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.overrides.Timeout = &timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.overrides.UserAgent = &userAgent
	}
}

// WithMaxRetries sets how many times a failed attempt is retried.
// Default: 1
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.overrides.Retry.MaxRetries = &count
	}
}

// WithRetryDelays sets the delay before the first retry and the cap on
// later delays.
// Default: 150ms and 1s
func WithRetryDelays(initial, max time.Duration) Option {
	return func(c *clientConfig) {
		c.overrides.Retry.InitialDelay = &initial
		c.overrides.Retry.MaxDelay = &max
	}
}

// WithBackoffFactor sets the multiplier applied to the delay after each retry.
// Default: 2
func WithBackoffFactor(factor float64) Option {
	return func(c *clientConfig) {
		c.overrides.Retry.BackoffFactor = &factor
	}
}

// WithRetryJitter sets the jitter of the retry policy. It is carried in
// Settings but does not change the computed delays.
func WithRetryJitter(jitter time.Duration) Option {
	return func(c *clientConfig) {
		c.overrides.Retry.Jitter = &jitter
	}
}

// WithRetryStatusCodes sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryStatusCodes(statusCodes ...int) Option {
	return func(c *clientConfig) {
		c.overrides.Retry.StatusCodes = append([]int{}, statusCodes...)
	}
}

// WithRetryMethods sets the HTTP methods whose error responses are retried.
// Default: [GET, POST, PUT, DELETE]
func WithRetryMethods(methods ...string) Option {
	return func(c *clientConfig) {
		c.overrides.Retry.Methods = append([]string{}, methods...)
	}
}

// WithRetryPolicy replaces the whole retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *clientConfig) {
		p = p.Clone()
		c.overrides.Retry = api.RetryOverrides{
			MaxRetries:    &p.MaxRetries,
			InitialDelay:  &p.InitialDelay,
			MaxDelay:      &p.MaxDelay,
			BackoffFactor: &p.BackoffFactor,
			Jitter:        &p.Jitter,
			StatusCodes:   p.StatusCodes,
			Methods:       p.Methods,
		}
		if c.overrides.Retry.StatusCodes == nil {
			c.overrides.Retry.StatusCodes = []int{}
		}
		if c.overrides.Retry.Methods == nil {
			c.overrides.Retry.Methods = []string{}
		}
	}
}

// WithHTTPClient sets a custom HTTP client. The client is copied and its
// Timeout replaced by the configured attempt timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger for request logs. The API key is never logged.
// Default: logs are discarded
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithMetrics registers Prometheus metrics for API calls on registerer.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = registerer
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
// Default: the global provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *clientConfig) {
		c.tracerProvider = tp
	}
}

// WithRequestIDHeader sends the per-call request ID in the named header.
func WithRequestIDHeader(header string) Option {
	return func(c *clientConfig) {
		c.requestIDHeader = header
	}
}
