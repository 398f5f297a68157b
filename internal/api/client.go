package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/apierrors"
)

// Config holds the configuration for creating a new API client.
type Config struct {
	// Settings is the resolved configuration, see Resolve.
	Settings Settings
	// HTTPClient is copied and its Timeout replaced by Settings.Timeout.
	// Nil uses a fresh http.Client.
	HTTPClient *http.Client
	// Logger receives request logs. The zero value discards them.
	Logger *zerolog.Logger
	// Metrics records Prometheus metrics. Nil disables them.
	Metrics *Metrics
	// TracerProvider creates the client span. Nil uses the global provider.
	TracerProvider trace.TracerProvider
	// RequestIDHeader, when set, sends the per-call request ID in this header.
	RequestIDHeader string
}

// Client executes API requests with retries. It is safe for concurrent use.
type Client struct {
	mu       sync.RWMutex
	settings Settings

	retry           RetryPolicy
	httpClient      *retryablehttp.Client
	logger          zerolog.Logger
	metrics         *Metrics
	tracer          trace.Tracer
	requestIDHeader string
}

type callKey struct{}

// call is the per-call state carried to retryablehttp hooks via the context.
type call struct {
	logger   zerolog.Logger
	method   string
	template string
	attempts int
}

// NewClient creates an API client from cfg.
func NewClient(cfg Config) *Client {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	c := &Client{
		settings:        cfg.Settings,
		retry:           cfg.Settings.Retry.Clone(),
		logger:          logger,
		metrics:         cfg.Metrics,
		tracer:          newTracer(cfg.TracerProvider),
		requestIDHeader: cfg.RequestIDHeader,
	}

	hc := &http.Client{}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		hc = &copied
	}
	hc.Timeout = cfg.Settings.Timeout

	rc := retryablehttp.NewClient()
	rc.HTTPClient = hc
	rc.Logger = leveledLogger{log: logger}
	rc.RetryMax = c.retry.MaxRetries
	rc.RetryWaitMin = c.retry.InitialDelay
	rc.RetryWaitMax = c.retry.MaxDelay
	rc.CheckRetry = c.checkRetry
	rc.Backoff = c.backoff
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.RequestLogHook = c.onAttempt
	c.httpClient = rc

	return c
}

// Settings returns a snapshot of the current settings.
func (c *Client) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.settings
	s.Retry = s.Retry.Clone()
	return s
}

// SetBaseURL changes the base URL for requests started afterwards.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.BaseURL = baseURL
}

// SetEnvironment switches environment and points the base URL at it.
func (c *Client) SetEnvironment(env Environment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Environment = env
	c.settings.BaseURL = string(env)
}

// SetAPIKey changes the API key for requests started afterwards.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.APIKeyAuth.Key = key
}

// SetAPIKeyHeader changes the header that carries the API key.
func (c *Client) SetAPIKeyHeader(header string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.APIKeyAuth.Header = header
}

// NewRequest starts a request against the current base URL with the
// default headers and API key applied.
func (c *Client) NewRequest(method, template string) *RequestBuilder {
	s := c.Settings()
	rb := NewRequest(method, s.BaseURL, template).
		Header("Accept", "application/json").
		APIKeyAuth(s.APIKeyAuth)
	if s.UserAgent != "" {
		rb.Header("User-Agent", s.UserAgent)
	}
	return rb
}

// Execute sends the request and decodes a 2xx JSON body into out.
// A nil out discards the body. Failures are returned as *Error.
func (c *Client) Execute(ctx context.Context, rb *RequestBuilder, table ErrorTable, out any) error {
	resp, err := c.do(ctx, rb, table)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := Unmarshal(resp.Body, out); err != nil {
		return &Error{
			Kind:       apierrors.KindDecode,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			Response:   resp,
			Err:        err,
		}
	}
	return nil
}

// ExecuteRaw sends the request and returns the 2xx body unparsed.
func (c *Client) ExecuteRaw(ctx context.Context, rb *RequestBuilder, table ErrorTable) ([]byte, error) {
	resp, err := c.do(ctx, rb, table)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) do(ctx context.Context, rb *RequestBuilder, table ErrorTable) (*RawResponse, error) {
	req, err := rb.Build()
	if err != nil {
		apiErr := apierrors.RequestSetup(err)
		c.logger.Error().Err(err).Str("endpoint", rb.template).Msg("request setup failed")
		c.metrics.failure(rb.method, rb.template, apiErr.Kind.String())
		return nil, apiErr
	}

	requestID := uuid.NewString()
	state := &call{
		logger: c.logger.With().
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("endpoint", req.Template).
			Logger(),
		method:   req.Method,
		template: req.Template,
	}

	ctx, span := startSpan(ctx, c.tracer, req, requestID)
	ctx = context.WithValue(ctx, callKey{}, state)
	start := time.Now()
	c.metrics.begin(req.Method, req.Template)

	raw, err := c.send(ctx, req, requestID)

	statusCode := 0
	if raw != nil {
		statusCode = raw.StatusCode
	}
	if err == nil && (statusCode < 200 || statusCode > 299) {
		apiErr := MapError(raw, table)
		apiErr.RequestID = requestID
		err = apiErr
	}

	elapsed := time.Since(start)
	c.metrics.end(req.Method, req.Template, statusCode, elapsed)
	retries := max(state.attempts-1, 0)
	endSpan(span, statusCode, retries, err)

	if err != nil {
		kind := apierrors.KindResponse
		if apiErr, ok := err.(*Error); ok {
			kind = apiErr.Kind
		}
		c.metrics.failure(req.Method, req.Template, kind.String())
		state.logger.Error().
			Err(err).
			Int("status", statusCode).
			Int("retries", retries).
			Dur("elapsed", elapsed).
			Msg("request failed")
		return nil, err
	}

	state.logger.Debug().
		Int("status", statusCode).
		Int("retries", retries).
		Dur("elapsed", elapsed).
		Msg("request completed")
	return raw, nil
}

// send performs the HTTP exchange. A returned error is always an *Error of
// kind KindRequestSetup or KindNoResponse.
func (c *Client) send(ctx context.Context, req *Request, requestID string) (*RawResponse, error) {
	var body any
	if req.Body != nil {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, apierrors.RequestSetup(err)
	}
	for key, values := range req.Header {
		httpReq.Header[key] = append([]string(nil), values...)
	}
	if c.requestIDHeader != "" {
		httpReq.Header.Set(c.requestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, apierrors.NoResponse(ctxErr)
		}
		return nil, apierrors.NoResponse(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NoResponse(fmt.Errorf("failed to read response body: %w", err))
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       data,
		URL:        req.URL,
	}, nil
}

func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	method := ""
	if resp != nil && resp.Request != nil {
		method = resp.Request.Method
	}
	return c.retry.ShouldRetry(method, resp, err), nil
}

// backoff receives the zero-based retry index from retryablehttp.
func (c *Client) backoff(_, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
	return c.retry.Delay(attemptNum + 1)
}

func (c *Client) onAttempt(_ retryablehttp.Logger, req *http.Request, attemptNum int) {
	state, ok := req.Context().Value(callKey{}).(*call)
	if !ok {
		return
	}
	state.attempts++
	c.metrics.attempt(state.method, state.template, attemptNum)
	if attemptNum > 0 {
		state.logger.Warn().Int("attempt", attemptNum+1).Msg("retrying request")
		return
	}
	state.logger.Debug().Int("attempt", attemptNum+1).Msg("sending request")
}
