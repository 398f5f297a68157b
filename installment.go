package asaas

import (
	"context"
	"net/http"
)

// InstallmentService manages installment plans under v3/installments.
type InstallmentService struct{ service }

// List returns installment plans.
func (s *InstallmentService) List(ctx context.Context, params *Pagination) (*ListResponse[Installment], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/installments"), params)
	return execute[ListResponse[Installment]](ctx, s.service, rb)
}

// Create creates an installment plan.
func (s *InstallmentService) Create(ctx context.Context, req *InstallmentCreateRequest) (*Installment, error) {
	rb := s.request(http.MethodPost, "v3/installments").JSON(req)
	return execute[Installment](ctx, s.service, rb)
}

// Get retrieves an installment plan.
func (s *InstallmentService) Get(ctx context.Context, id string) (*Installment, error) {
	rb := s.request(http.MethodGet, "v3/installments/{id}").PathParam("id", id)
	return execute[Installment](ctx, s.service, rb)
}

// Delete removes an installment plan and its pending charges.
func (s *InstallmentService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/installments/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// ListPayments returns the charges of an installment plan.
func (s *InstallmentService) ListPayments(ctx context.Context, id string, params *InstallmentPaymentsParams) (*ListResponse[Payment], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/installments/{id}/payments").PathParam("id", id), params)
	return execute[ListResponse[Payment]](ctx, s.service, rb)
}

// PaymentBook downloads the payment book of an installment plan as PDF.
func (s *InstallmentService) PaymentBook(ctx context.Context, id string, params *PaymentBookParams) ([]byte, error) {
	rb := s.request(http.MethodGet, "v3/installments/{id}/paymentBook").
		PathParam("id", id).
		Header("Accept", "application/pdf")
	applyQuery(rb, params)
	return executeRaw(ctx, s.service, rb)
}

// Refund refunds every paid charge of an installment plan.
func (s *InstallmentService) Refund(ctx context.Context, id string) (*Installment, error) {
	rb := s.request(http.MethodPost, "v3/installments/{id}/refund").PathParam("id", id)
	return execute[Installment](ctx, s.service, rb)
}
