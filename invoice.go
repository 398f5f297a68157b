package asaas

import (
	"context"
	"net/http"
)

// InvoiceService manages service invoices under v3/invoices.
type InvoiceService struct{ service }

// List returns invoices matching params.
func (s *InvoiceService) List(ctx context.Context, params *ListInvoicesParams) (*ListResponse[Invoice], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/invoices"), params)
	return execute[ListResponse[Invoice]](ctx, s.service, rb)
}

// Schedule schedules an invoice for issue.
func (s *InvoiceService) Schedule(ctx context.Context, req *InvoiceScheduleRequest) (*Invoice, error) {
	rb := s.request(http.MethodPost, "v3/invoices").JSON(req)
	return execute[Invoice](ctx, s.service, rb)
}

// Get retrieves an invoice.
func (s *InvoiceService) Get(ctx context.Context, id string) (*Invoice, error) {
	rb := s.request(http.MethodGet, "v3/invoices/{id}").PathParam("id", id)
	return execute[Invoice](ctx, s.service, rb)
}

// Update changes a scheduled invoice.
func (s *InvoiceService) Update(ctx context.Context, id string, req *InvoiceUpdateRequest) (*Invoice, error) {
	rb := s.request(http.MethodPut, "v3/invoices/{id}").PathParam("id", id).JSON(req)
	return execute[Invoice](ctx, s.service, rb)
}

// Authorize issues a scheduled invoice immediately.
func (s *InvoiceService) Authorize(ctx context.Context, id string) (*Invoice, error) {
	rb := s.request(http.MethodPost, "v3/invoices/{id}/authorize").PathParam("id", id)
	return execute[Invoice](ctx, s.service, rb)
}

// Cancel cancels an invoice. req may be nil.
func (s *InvoiceService) Cancel(ctx context.Context, id string, req *InvoiceCancelRequest) (*Invoice, error) {
	rb := s.request(http.MethodPost, "v3/invoices/{id}/cancel").PathParam("id", id).JSON(req)
	return execute[Invoice](ctx, s.service, rb)
}
