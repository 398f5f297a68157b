// Package api provides the HTTP plumbing shared by every Asaas service:
// settings resolution, request construction, retries and error mapping.
//
// # Settings
//
// [Resolve] merges a partial [Overrides] value over the defaults and never
// fails. Unset fields fall back to production, a 10s timeout, the
// "access_token" API key header and the default [RetryPolicy].
//
// # Requests
//
// [RequestBuilder] assembles a [Request] without doing any I/O:
//
//	req, err := api.NewRequest(http.MethodGet, settings.BaseURL, "v3/customers/{id}").
//	    PathParam("id", "cus_000005219613").
//	    OptionalQuery("limit", limit).
//	    APIKeyAuth(settings.APIKeyAuth).
//	    Build()
//
// Path parameters are escaped, query keys are written as given so that
// range filters such as "dateCreated[ge]" stay readable, and POST, PUT and
// PATCH always carry a body ("{}" when none was set).
//
// # Retry Behavior
//
// [Client] sends requests through go-retryablehttp. A failed attempt is
// retried when no response arrived, or when both the status and the method
// are listed in the policy. By default these statuses are retried once:
//
//   - 408 Request Timeout
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// for GET, POST, PUT and DELETE. PATCH is not retried. The delay before
// retry n is InitialDelay * BackoffFactor^(n-1), capped at MaxDelay.
// Retry counters live in the call, so concurrent calls never share them.
//
// # Error Handling
//
// Non-2xx responses are converted by [MapError] using the service's
// [ErrorTable]. Every failure is an *[Error] whose Kind tells the variants
// apart; use errors.Is with the apierrors sentinels for common statuses.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Setters affect only
// requests started after they return.
package api
