package asaas

import (
	"context"
	"net/http"
)

// SubscriptionService manages recurring charges under v3/subscriptions.
type SubscriptionService struct{ service }

// List returns subscriptions matching params.
func (s *SubscriptionService) List(ctx context.Context, params *ListSubscriptionsParams) (*ListResponse[Subscription], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/subscriptions"), params)
	return execute[ListResponse[Subscription]](ctx, s.service, rb)
}

// Create creates a subscription.
func (s *SubscriptionService) Create(ctx context.Context, req *SubscriptionCreateRequest) (*Subscription, error) {
	rb := s.request(http.MethodPost, "v3/subscriptions").JSON(req)
	return execute[Subscription](ctx, s.service, rb)
}

// Get retrieves a subscription.
func (s *SubscriptionService) Get(ctx context.Context, id string) (*Subscription, error) {
	rb := s.request(http.MethodGet, "v3/subscriptions/{id}").PathParam("id", id)
	return execute[Subscription](ctx, s.service, rb)
}

// Update changes a subscription.
func (s *SubscriptionService) Update(ctx context.Context, id string, req *SubscriptionUpdateRequest) (*Subscription, error) {
	rb := s.request(http.MethodPut, "v3/subscriptions/{id}").PathParam("id", id).JSON(req)
	return execute[Subscription](ctx, s.service, rb)
}

// Delete removes a subscription.
func (s *SubscriptionService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/subscriptions/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// ListPayments returns the charges generated by a subscription.
func (s *SubscriptionService) ListPayments(ctx context.Context, id string, params *Pagination) (*ListResponse[Payment], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/subscriptions/{id}/payments").PathParam("id", id), params)
	return execute[ListResponse[Payment]](ctx, s.service, rb)
}
