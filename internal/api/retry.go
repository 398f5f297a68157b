package api

import (
	"math"
	"net/http"
	"slices"
	"strings"
	"time"
)

// RetryPolicy configures retry behavior for failed HTTP requests.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retries after the first attempt.
	MaxRetries int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// BackoffFactor is the factor by which the delay grows after each retry.
	BackoffFactor float64
	// Jitter is carried for configuration compatibility. Delays do not use it.
	Jitter time.Duration
	// StatusCodes lists the response statuses that may be retried.
	StatusCodes []int
	// Methods lists the HTTP methods that may be retried on a retryable status.
	Methods []string
}

// Clone returns a copy that shares no slices with p.
func (p RetryPolicy) Clone() RetryPolicy {
	p.StatusCodes = slices.Clone(p.StatusCodes)
	p.Methods = slices.Clone(p.Methods)
	return p
}

// RetryableStatus reports whether statusCode is in the policy.
func (p RetryPolicy) RetryableStatus(statusCode int) bool {
	return slices.Contains(p.StatusCodes, statusCode)
}

// RetryableMethod reports whether method is in the policy.
func (p RetryPolicy) RetryableMethod(method string) bool {
	return slices.ContainsFunc(p.Methods, func(m string) bool {
		return strings.EqualFold(m, method)
	})
}

// ShouldRetry decides whether the outcome of an attempt is worth another one.
// A transport error with no response is always retryable; a response is
// retryable only when both its status and the request method are listed.
func (p RetryPolicy) ShouldRetry(method string, resp *http.Response, err error) bool {
	if err != nil || resp == nil {
		return true
	}
	return p.RetryableStatus(resp.StatusCode) && p.RetryableMethod(method)
}

// Delay returns the wait before retry n, counted from 1:
// min(InitialDelay * BackoffFactor^(n-1), MaxDelay). A zero MaxDelay means
// no wait.
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	delay := float64(p.InitialDelay) * math.Pow(p.BackoffFactor, float64(n-1))
	delay = min(delay, float64(p.MaxDelay))
	// NaN and negatives wait nothing; the cap keeps the conversion in range.
	if !(delay > 0) {
		return 0
	}
	if delay >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}
