package asaas

import (
	"context"
	"net/http"
)

// WebhookService manages webhook configurations under v3/webhooks.
type WebhookService struct{ service }

// List returns the webhooks of the account.
func (s *WebhookService) List(ctx context.Context, params *Pagination) (*ListResponse[Webhook], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/webhooks"), params)
	return execute[ListResponse[Webhook]](ctx, s.service, rb)
}

// Create creates a webhook.
func (s *WebhookService) Create(ctx context.Context, req *WebhookRequest) (*Webhook, error) {
	rb := s.request(http.MethodPost, "v3/webhooks").JSON(req)
	return execute[Webhook](ctx, s.service, rb)
}

// Get retrieves a webhook.
func (s *WebhookService) Get(ctx context.Context, id string) (*Webhook, error) {
	rb := s.request(http.MethodGet, "v3/webhooks/{id}").PathParam("id", id)
	return execute[Webhook](ctx, s.service, rb)
}

// Update changes a webhook.
func (s *WebhookService) Update(ctx context.Context, id string, req *WebhookRequest) (*Webhook, error) {
	rb := s.request(http.MethodPut, "v3/webhooks/{id}").PathParam("id", id).JSON(req)
	return execute[Webhook](ctx, s.service, rb)
}

// Delete removes a webhook.
func (s *WebhookService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/webhooks/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}
