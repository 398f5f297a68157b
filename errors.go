package asaas

import (
	"errors"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is returned on HTTP 401.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned on HTTP 403.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned on HTTP 404.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrValidation matches a 400 whose body decoded into an ErrorResponse.
	ErrValidation = apierrors.ErrValidation

	// ErrNoResponse is returned when the request was sent but nothing came
	// back, including timeouts and cancellation.
	ErrNoResponse = apierrors.ErrNoResponse

	// ErrRequestSetup is returned when a request could not be built.
	ErrRequestSetup = apierrors.ErrRequestSetup
)

// Error is the single error type returned by every API call.
type Error = apierrors.Error

// ErrorKind tags the variant carried by an *Error.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindResponse     = apierrors.KindResponse
	KindStructured   = apierrors.KindStructured
	KindDecode       = apierrors.KindDecode
	KindNoResponse   = apierrors.KindNoResponse
	KindRequestSetup = apierrors.KindRequestSetup
)

// ErrorResponse is the {"errors": [...]} envelope the API returns on 400.
type ErrorResponse = apierrors.ErrorResponse

// ErrorItem is one entry of an ErrorResponse.
type ErrorItem = apierrors.ErrorItem

// RawResponse is the undecoded HTTP response attached to an *Error.
type RawResponse = apierrors.RawResponse

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ValidationErrors returns the structured error items of a 400 response,
// or nil when err carries none.
func ValidationErrors(err error) []ErrorItem {
	e, ok := AsError(err)
	if !ok || e.Kind != KindStructured {
		return nil
	}
	if body, ok := e.Body.(*ErrorResponse); ok {
		return body.Errors
	}
	return nil
}
