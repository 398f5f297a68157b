package asaas

import (
	"context"
	"net/http"
)

// TransferService manages payouts under v3/transfers.
type TransferService struct{ service }

// List returns transfers matching params.
func (s *TransferService) List(ctx context.Context, params *ListTransfersParams) (*ListResponse[Transfer], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/transfers"), params)
	return execute[ListResponse[Transfer]](ctx, s.service, rb)
}

// Create transfers to another institution's account or to a Pix key.
func (s *TransferService) Create(ctx context.Context, req *TransferCreateRequest) (*Transfer, error) {
	rb := s.request(http.MethodPost, "v3/transfers").JSON(req)
	return execute[Transfer](ctx, s.service, rb)
}

// CreateInternal transfers between Asaas accounts.
func (s *TransferService) CreateInternal(ctx context.Context, req *InternalTransferRequest) (*Transfer, error) {
	rb := s.request(http.MethodPost, "v3/transfers/internal").JSON(req)
	return execute[Transfer](ctx, s.service, rb)
}

// Get retrieves a transfer.
func (s *TransferService) Get(ctx context.Context, id string) (*Transfer, error) {
	rb := s.request(http.MethodGet, "v3/transfers/{id}").PathParam("id", id)
	return execute[Transfer](ctx, s.service, rb)
}

// Cancel cancels a pending transfer.
func (s *TransferService) Cancel(ctx context.Context, id string) (*Transfer, error) {
	rb := s.request(http.MethodDelete, "v3/transfers/{id}/cancel").PathParam("id", id)
	return execute[Transfer](ctx, s.service, rb)
}
