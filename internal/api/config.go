package api

import (
	"net/http"
	"time"
)

// Version is the SDK version reported in the default User-Agent.
const Version = "1.0.0"

// Environment is the base URL of one of the Asaas deployments.
type Environment string

const (
	// Production is the live Asaas API.
	Production Environment = "https://api.asaas.com/"
	// Sandbox is the Asaas test environment.
	Sandbox Environment = "https://api-sandbox.asaas.com/"
)

// Defaults applied by Resolve to every field left unset.
const (
	DefaultUserAgent     = "asaas-sdk-go/" + Version
	DefaultEnvironment   = Production
	DefaultTimeout       = 10 * time.Second
	DefaultAPIKeyHeader  = "access_token"
	DefaultMaxRetries    = 1
	DefaultInitialDelay  = 150 * time.Millisecond
	DefaultMaxDelay      = time.Second
	DefaultBackoffFactor = 2.0
	DefaultJitter        = 150 * time.Millisecond
)

// APIKeyAuth names the header that carries the API key and the key itself.
type APIKeyAuth struct {
	Header string
	Key    string
}

// Settings is a fully resolved client configuration.
type Settings struct {
	UserAgent   string
	BaseURL     string
	Environment Environment
	// Timeout bounds a single attempt. Zero disables it.
	Timeout    time.Duration
	Retry      RetryPolicy
	APIKeyAuth APIKeyAuth
}

// Overrides is a partial configuration. A nil field means "use the default";
// a non-nil field is taken as-is, zero values included.
type Overrides struct {
	UserAgent    *string
	BaseURL      *string
	Environment  *Environment
	Timeout      *time.Duration
	Retry        RetryOverrides
	APIKey       *string
	APIKeyHeader *string
}

// RetryOverrides is the partial form of RetryPolicy. Nil slices are unset.
type RetryOverrides struct {
	MaxRetries    *int
	InitialDelay  *time.Duration
	MaxDelay      *time.Duration
	BackoffFactor *float64
	Jitter        *time.Duration
	StatusCodes   []int
	Methods       []string
}

// DefaultRetryPolicy returns the retry policy used when nothing is overridden.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    DefaultMaxRetries,
		InitialDelay:  DefaultInitialDelay,
		MaxDelay:      DefaultMaxDelay,
		BackoffFactor: DefaultBackoffFactor,
		Jitter:        DefaultJitter,
		StatusCodes: []int{
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
		Methods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
	}
}

// Resolve merges o over the defaults. It never fails.
func Resolve(o Overrides) Settings {
	s := Settings{
		UserAgent:   DefaultUserAgent,
		Environment: DefaultEnvironment,
		Timeout:     DefaultTimeout,
		Retry:       resolveRetry(o.Retry),
		APIKeyAuth:  APIKeyAuth{Header: DefaultAPIKeyHeader},
	}

	if o.UserAgent != nil {
		s.UserAgent = *o.UserAgent
	}
	if o.Environment != nil {
		s.Environment = *o.Environment
	}
	s.BaseURL = string(s.Environment)
	if o.BaseURL != nil {
		s.BaseURL = *o.BaseURL
	}
	if o.Timeout != nil {
		s.Timeout = *o.Timeout
	}
	if o.APIKey != nil {
		s.APIKeyAuth.Key = *o.APIKey
	}
	if o.APIKeyHeader != nil {
		s.APIKeyAuth.Header = *o.APIKeyHeader
	}

	return s
}

func resolveRetry(o RetryOverrides) RetryPolicy {
	p := DefaultRetryPolicy()

	if o.MaxRetries != nil {
		p.MaxRetries = *o.MaxRetries
	}
	if o.InitialDelay != nil {
		p.InitialDelay = *o.InitialDelay
	}
	if o.MaxDelay != nil {
		p.MaxDelay = *o.MaxDelay
	}
	if o.BackoffFactor != nil {
		p.BackoffFactor = *o.BackoffFactor
	}
	if o.Jitter != nil {
		p.Jitter = *o.Jitter
	}
	if o.StatusCodes != nil {
		p.StatusCodes = append([]int(nil), o.StatusCodes...)
	}
	if o.Methods != nil {
		p.Methods = append([]string(nil), o.Methods...)
	}

	return p
}
