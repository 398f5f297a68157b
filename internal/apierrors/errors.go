// Package apierrors provides shared error types for the Asaas client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is returned when the API key is missing, invalid or revoked.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrForbidden is returned when the key may not access the resource.
	ErrForbidden = errors.New("access to resource forbidden")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrValidation is returned when the API rejected the request with a
	// structured error body.
	ErrValidation = errors.New("request rejected by validation")

	// ErrNoResponse is returned when the request was sent but no response arrived.
	ErrNoResponse = errors.New("no response received from server")

	// ErrRequestSetup is returned when the request could not be built or sent.
	ErrRequestSetup = errors.New("request setup error")
)

// Kind tags the variant carried by an *Error.
type Kind int

const (
	// KindResponse is an HTTP error status with no mapping for it.
	KindResponse Kind = iota
	// KindStructured is an HTTP error status whose body decoded into the
	// error model registered for that status.
	KindStructured
	// KindDecode is a mapped status whose body could not be decoded.
	KindDecode
	// KindNoResponse means the request went out but nothing came back.
	KindNoResponse
	// KindRequestSetup means the request failed before it could be sent.
	KindRequestSetup
)

func (k Kind) String() string {
	switch k {
	case KindResponse:
		return "response"
	case KindStructured:
		return "structured"
	case KindDecode:
		return "decode"
	case KindNoResponse:
		return "no_response"
	case KindRequestSetup:
		return "request_setup"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrorBody is implemented by decoded error payloads.
type ErrorBody interface {
	ErrorMessage() string
}

// ErrorItem is a single entry of the API's errors envelope.
type ErrorItem struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the {"errors": [...]} envelope returned on 400.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors,omitempty"`
}

// ErrorMessage joins the item descriptions, falling back to their codes.
func (r *ErrorResponse) ErrorMessage() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, item := range r.Errors {
		switch {
		case item.Description != "":
			parts = append(parts, item.Description)
		case item.Code != "":
			parts = append(parts, item.Code)
		}
	}
	return strings.Join(parts, "; ")
}

// RawResponse is the fully read HTTP response attached to an *Error.
type RawResponse struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	URL        string
}

// Error is returned for every failed API call. Kind says which of the
// variants it is; StatusCode is 0 when no response was received.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Response   *RawResponse
	Body       ErrorBody
	RequestID  string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNoResponse:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	case KindRequestSetup:
		return e.Message
	}
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNoResponse:
		return target == ErrNoResponse
	case KindRequestSetup:
		return target == ErrRequestSetup
	}
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrValidation && e.Kind == KindStructured
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// NoResponse wraps a transport failure that produced no HTTP response.
func NoResponse(err error) *Error {
	return &Error{
		Kind:    KindNoResponse,
		Message: "no response received from server",
		Err:     err,
	}
}

// RequestSetup wraps a failure that happened before the request was sent.
func RequestSetup(err error) *Error {
	return &Error{
		Kind:    KindRequestSetup,
		Message: fmt.Sprintf("request setup error: %v", err),
		Err:     err,
	}
}
