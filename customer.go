package asaas

import (
	"context"
	"net/http"
)

// CustomerService manages customers under v3/customers.
type CustomerService struct{ service }

// List returns customers matching params.
func (s *CustomerService) List(ctx context.Context, params *ListCustomersParams) (*ListResponse[Customer], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/customers"), params)
	return execute[ListResponse[Customer]](ctx, s.service, rb)
}

// Create registers a customer.
func (s *CustomerService) Create(ctx context.Context, req *CustomerCreateRequest) (*Customer, error) {
	rb := s.request(http.MethodPost, "v3/customers").JSON(req)
	return execute[Customer](ctx, s.service, rb)
}

// Get retrieves a customer.
func (s *CustomerService) Get(ctx context.Context, id string) (*Customer, error) {
	rb := s.request(http.MethodGet, "v3/customers/{id}").PathParam("id", id)
	return execute[Customer](ctx, s.service, rb)
}

// Update changes a customer.
func (s *CustomerService) Update(ctx context.Context, id string, req *CustomerUpdateRequest) (*Customer, error) {
	rb := s.request(http.MethodPut, "v3/customers/{id}").PathParam("id", id).JSON(req)
	return execute[Customer](ctx, s.service, rb)
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/customers/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// Restore brings back a removed customer.
func (s *CustomerService) Restore(ctx context.Context, id string) (*Customer, error) {
	rb := s.request(http.MethodPost, "v3/customers/{id}/restore").PathParam("id", id)
	return execute[Customer](ctx, s.service, rb)
}
