package api

import (
	"errors"
	"math"
	"net/http"
	"testing"
	"time"
)

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()

	if p.MaxRetries != 1 {
		t.Errorf("MaxRetries = %d, want 1", p.MaxRetries)
	}
	if p.InitialDelay != 150*time.Millisecond {
		t.Errorf("InitialDelay = %v, want 150ms", p.InitialDelay)
	}
	if p.MaxDelay != time.Second {
		t.Errorf("MaxDelay = %v, want 1s", p.MaxDelay)
	}
	if p.BackoffFactor != 2.0 {
		t.Errorf("BackoffFactor = %v, want 2.0", p.BackoffFactor)
	}
	if p.Jitter != 150*time.Millisecond {
		t.Errorf("Jitter = %v, want 150ms", p.Jitter)
	}
	if len(p.StatusCodes) != 6 {
		t.Errorf("StatusCodes = %v, want 6 entries", p.StatusCodes)
	}
	if p.RetryableMethod(http.MethodPatch) {
		t.Error("PATCH should not be retryable by default")
	}
}

func TestRetryPolicy_ShouldRetry(t *testing.T) {
	p := DefaultRetryPolicy()

	tests := []struct {
		name       string
		method     string
		statusCode int
		err        error
		expected   bool
	}{
		{"retryable 503 GET", http.MethodGet, 503, nil, true},
		{"retryable 429 POST", http.MethodPost, 429, nil, true},
		{"retryable 408 PUT", http.MethodPut, 408, nil, true},
		{"retryable 500 DELETE", http.MethodDelete, 500, nil, true},
		{"retryable 502", http.MethodGet, 502, nil, true},
		{"retryable 504", http.MethodGet, 504, nil, true},
		{"PATCH not retried", http.MethodPatch, 503, nil, false},
		{"non-retryable 400", http.MethodGet, 400, nil, false},
		{"non-retryable 401", http.MethodGet, 401, nil, false},
		{"non-retryable 404", http.MethodGet, 404, nil, false},
		{"success", http.MethodGet, 200, nil, false},
		{"lowercase method", "get", 503, nil, true},
		{"network error", http.MethodPatch, 0, errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp *http.Response
			if tt.err == nil {
				resp = &http.Response{StatusCode: tt.statusCode}
			}
			result := p.ShouldRetry(tt.method, resp, tt.err)
			if result != tt.expected {
				t.Errorf("ShouldRetry(%s, %d, %v) = %v, want %v",
					tt.method, tt.statusCode, tt.err, result, tt.expected)
			}
		})
	}
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{
		InitialDelay:  time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0,
		Jitter:        500 * time.Millisecond,
	}

	tests := []struct {
		retry    int
		expected time.Duration
	}{
		{1, time.Second},      // 1 * 2^0
		{2, 2 * time.Second},  // 1 * 2^1
		{3, 4 * time.Second},  // 1 * 2^2
		{4, 8 * time.Second},  // 1 * 2^3
		{5, 16 * time.Second}, // 1 * 2^4
		{6, 30 * time.Second}, // capped
		{10, 30 * time.Second},
		{0, time.Second}, // clamped to the first retry
	}

	for _, tt := range tests {
		if got := p.Delay(tt.retry); got != tt.expected {
			t.Errorf("Delay(%d) = %v, want %v", tt.retry, got, tt.expected)
		}
	}
}

func TestRetryPolicy_DelayZeroMaxDelay(t *testing.T) {
	maxDelay := time.Duration(0)
	p := Resolve(Overrides{Retry: RetryOverrides{MaxDelay: &maxDelay}}).Retry

	for _, n := range []int{1, 2, 4} {
		if got := p.Delay(n); got != 0 {
			t.Errorf("Delay(%d) = %v, want 0", n, got)
		}
	}
}

func TestRetryPolicy_DelayLarge(t *testing.T) {
	tests := []struct {
		name     string
		policy   RetryPolicy
		expected time.Duration
	}{
		{
			name:     "cap applies to huge growth",
			policy:   RetryPolicy{InitialDelay: time.Second, MaxDelay: time.Minute, BackoffFactor: 10},
			expected: time.Minute,
		},
		{
			name:     "max duration cap stays positive",
			policy:   RetryPolicy{InitialDelay: time.Second, MaxDelay: time.Duration(math.MaxInt64), BackoffFactor: 10},
			expected: time.Duration(math.MaxInt64),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Delay(20); got != tt.expected {
				t.Errorf("Delay(20) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRetryPolicy_DelayDefaults(t *testing.T) {
	p := DefaultRetryPolicy()

	if got := p.Delay(1); got != 150*time.Millisecond {
		t.Errorf("Delay(1) = %v, want 150ms", got)
	}
	if got := p.Delay(2); got != 300*time.Millisecond {
		t.Errorf("Delay(2) = %v, want 300ms", got)
	}
	if got := p.Delay(5); got != time.Second {
		t.Errorf("Delay(5) = %v, want 1s", got)
	}
}

func TestRetryPolicy_Clone(t *testing.T) {
	p := DefaultRetryPolicy()
	clone := p.Clone()
	clone.StatusCodes[0] = 999
	clone.Methods[0] = "TRACE"

	if p.StatusCodes[0] == 999 {
		t.Error("Clone shares StatusCodes with the original")
	}
	if p.Methods[0] == "TRACE" {
		t.Error("Clone shares Methods with the original")
	}
}
