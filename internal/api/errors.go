package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/apierrors"
)

// Re-export error types from apierrors for use within this package.
type (
	Error         = apierrors.Error
	ErrorBody     = apierrors.ErrorBody
	ErrorResponse = apierrors.ErrorResponse
	RawResponse   = apierrors.RawResponse
)

// ErrorMapping describes how to decode the body of one error status.
type ErrorMapping struct {
	// Kind is the error kind reported when the body decodes.
	Kind apierrors.Kind
	// New returns a fresh value to decode the body into.
	New func() ErrorBody
}

// ErrorTable maps HTTP status codes to error models. Tables are built once
// per service and only read afterwards.
type ErrorTable map[int]ErrorMapping

// ValidationErrors is the table every Asaas resource uses: a 400 carries the
// {"errors": [...]} envelope.
func ValidationErrors() ErrorTable {
	return ErrorTable{
		http.StatusBadRequest: {
			Kind: apierrors.KindStructured,
			New:  func() ErrorBody { return new(ErrorResponse) },
		},
	}
}

// MapError converts a non-2xx response into an *Error.
func MapError(resp *RawResponse, table ErrorTable) *Error {
	mapping, ok := table[resp.StatusCode]
	if !ok {
		var envelope ErrorResponse
		message := ""
		if len(resp.Body) > 0 && Unmarshal(resp.Body, &envelope) == nil {
			message = envelope.ErrorMessage()
		}
		return &Error{
			Kind:       apierrors.KindResponse,
			StatusCode: resp.StatusCode,
			Message:    fallbackMessage(message, resp),
			Response:   resp,
		}
	}

	body := mapping.New()
	if err := Unmarshal(resp.Body, body); err != nil {
		return &Error{
			Kind:       apierrors.KindDecode,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to deserialize error response for status %d: %v", resp.StatusCode, err),
			Response:   resp,
			Err:        err,
		}
	}

	return &Error{
		Kind:       mapping.Kind,
		StatusCode: resp.StatusCode,
		Message:    fallbackMessage(body.ErrorMessage(), resp),
		Response:   resp,
		Body:       body,
	}
}

func fallbackMessage(message string, resp *RawResponse) string {
	if strings.TrimSpace(message) != "" {
		return message
	}
	if text := statusText(resp); text != "" {
		return text
	}
	return fmt.Sprintf("%d error in request to: %s", resp.StatusCode, resp.URL)
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *RawResponse) string {
	if resp.Status != "" {
		code := fmt.Sprintf("%d", resp.StatusCode)
		if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
			return text
		}
	}
	return http.StatusText(resp.StatusCode)
}
