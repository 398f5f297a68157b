package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/apierrors"
)

func TestMapError_StructuredBody(t *testing.T) {
	resp := &RawResponse{
		StatusCode: 400,
		Status:     "400 Bad Request",
		Body:       []byte(`{"errors":[{"code":"invalid_value","description":"invalid value"}]}`),
		URL:        "https://api.asaas.com/v3/payments",
	}

	err := MapError(resp, ValidationErrors())

	assert.Equal(t, apierrors.KindStructured, err.Kind)
	assert.Equal(t, 400, err.StatusCode)
	assert.Equal(t, "invalid value", err.Message)
	assert.Same(t, resp, err.Response)

	body, ok := err.Body.(*ErrorResponse)
	require.True(t, ok)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "invalid_value", body.Errors[0].Code)
	assert.True(t, errors.Is(err, apierrors.ErrValidation))
}

func TestMapError_StructuredBodyWithoutMessage(t *testing.T) {
	resp := &RawResponse{StatusCode: 400, Status: "400 Bad Request", Body: []byte(`{"errors":[]}`)}

	err := MapError(resp, ValidationErrors())

	assert.Equal(t, apierrors.KindStructured, err.Kind)
	assert.Equal(t, "Bad Request", err.Message)
}

func TestMapError_UndecodableMappedBody(t *testing.T) {
	resp := &RawResponse{StatusCode: 400, Status: "400 Bad Request", Body: []byte(`<html>oops</html>`)}

	err := MapError(resp, ValidationErrors())

	assert.Equal(t, apierrors.KindDecode, err.Kind)
	assert.Equal(t, 400, err.StatusCode)
	assert.Contains(t, err.Message, "failed to deserialize error response for status 400: ")
	assert.Error(t, err.Err)
	assert.False(t, errors.Is(err, apierrors.ErrValidation))
}

func TestMapError_UnmappedStatus(t *testing.T) {
	resp := &RawResponse{
		StatusCode: 404,
		Status:     "404 Not Found",
		Body:       []byte(`{"message":"nope"}`),
		URL:        "https://api.asaas.com/v3/customers/cus_1",
	}

	err := MapError(resp, ValidationErrors())

	assert.Equal(t, apierrors.KindResponse, err.Kind)
	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, "Not Found", err.Message)
	assert.Nil(t, err.Body)
	assert.True(t, errors.Is(err, apierrors.ErrNotFound))
}

func TestMapError_UnmappedStatusWithEnvelope(t *testing.T) {
	resp := &RawResponse{
		StatusCode: 401,
		Status:     "401 Unauthorized",
		Body:       []byte(`{"errors":[{"code":"invalid_access_token","description":"A chave de API fornecida é inválida"}]}`),
	}

	err := MapError(resp, ErrorTable{})

	assert.Equal(t, apierrors.KindResponse, err.Kind)
	assert.Equal(t, "A chave de API fornecida é inválida", err.Message)
	assert.True(t, errors.Is(err, apierrors.ErrUnauthorized))
}

func TestMapError_MessageFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		resp     *RawResponse
		expected string
	}{
		{
			name:     "server reason phrase",
			resp:     &RawResponse{StatusCode: 503, Status: "503 Temporarily Down"},
			expected: "Temporarily Down",
		},
		{
			name:     "standard status text",
			resp:     &RawResponse{StatusCode: 502},
			expected: "Bad Gateway",
		},
		{
			name:     "unknown status",
			resp:     &RawResponse{StatusCode: 599, URL: "https://api.asaas.com/v3/bill"},
			expected: "599 error in request to: https://api.asaas.com/v3/bill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError(tt.resp, ErrorTable{})
			assert.Equal(t, tt.expected, err.Message)
		})
	}
}
