package asaas

import (
	"context"
	"net/http"
)

// PaymentService manages charges under v3/payments.
type PaymentService struct{ service }

// List returns charges matching params. A nil params lists everything.
func (s *PaymentService) List(ctx context.Context, params *ListPaymentsParams) (*ListResponse[Payment], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/payments"), params)
	return execute[ListResponse[Payment]](ctx, s.service, rb)
}

// Create creates a charge.
func (s *PaymentService) Create(ctx context.Context, req *PaymentCreateRequest) (*Payment, error) {
	rb := s.request(http.MethodPost, "v3/payments").JSON(req)
	return execute[Payment](ctx, s.service, rb)
}

// Get retrieves a charge.
func (s *PaymentService) Get(ctx context.Context, id string) (*Payment, error) {
	rb := s.request(http.MethodGet, "v3/payments/{id}").PathParam("id", id)
	return execute[Payment](ctx, s.service, rb)
}

// Update changes a charge that has not been paid yet.
func (s *PaymentService) Update(ctx context.Context, id string, req *PaymentUpdateRequest) (*Payment, error) {
	rb := s.request(http.MethodPut, "v3/payments/{id}").PathParam("id", id).JSON(req)
	return execute[Payment](ctx, s.service, rb)
}

// Delete removes a charge.
func (s *PaymentService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/payments/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// LeanPaymentService manages charges under v3/lean/payments, which answer
// with summary data only.
type LeanPaymentService struct{ service }

// List returns charges matching params in summary form.
func (s *LeanPaymentService) List(ctx context.Context, params *ListPaymentsParams) (*ListResponse[PaymentLean], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/lean/payments"), params)
	return execute[ListResponse[PaymentLean]](ctx, s.service, rb)
}

// Create creates a charge and returns its summary.
func (s *LeanPaymentService) Create(ctx context.Context, req *PaymentCreateRequest) (*PaymentLean, error) {
	rb := s.request(http.MethodPost, "v3/lean/payments").JSON(req)
	return execute[PaymentLean](ctx, s.service, rb)
}

// Get retrieves the summary of a charge.
func (s *LeanPaymentService) Get(ctx context.Context, id string) (*PaymentLean, error) {
	rb := s.request(http.MethodGet, "v3/lean/payments/{id}").PathParam("id", id)
	return execute[PaymentLean](ctx, s.service, rb)
}

// Update changes a charge and returns its summary.
func (s *LeanPaymentService) Update(ctx context.Context, id string, req *PaymentUpdateRequest) (*PaymentLean, error) {
	rb := s.request(http.MethodPut, "v3/lean/payments/{id}").PathParam("id", id).JSON(req)
	return execute[PaymentLean](ctx, s.service, rb)
}

// Delete removes a charge.
func (s *LeanPaymentService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/lean/payments/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// PaymentRefundService reads and requests charge refunds.
type PaymentRefundService struct{ service }

// ListRefunds returns the refunds of a charge.
func (s *PaymentRefundService) ListRefunds(ctx context.Context, paymentID string) (*ListResponse[PaymentRefund], error) {
	rb := s.request(http.MethodGet, "v3/payments/{id}/refunds").PathParam("id", paymentID)
	return execute[ListResponse[PaymentRefund]](ctx, s.service, rb)
}

// RefundBankSlip starts the refund of a paid bank slip. req may be nil.
func (s *PaymentRefundService) RefundBankSlip(ctx context.Context, paymentID string, req *PaymentRefundRequest) (*BankSlipRefund, error) {
	rb := s.request(http.MethodPost, "v3/payments/{id}/bankSlip/refund").PathParam("id", paymentID).JSON(req)
	return execute[BankSlipRefund](ctx, s.service, rb)
}

// PaymentSplitService reads splits under v3/payments/splits.
type PaymentSplitService struct{ service }

// GetPaid retrieves a split paid by this account.
func (s *PaymentSplitService) GetPaid(ctx context.Context, id string) (*PaymentSplit, error) {
	rb := s.request(http.MethodGet, "v3/payments/splits/paid/{id}").PathParam("id", id)
	return execute[PaymentSplit](ctx, s.service, rb)
}

// ListPaid returns splits paid by this account.
func (s *PaymentSplitService) ListPaid(ctx context.Context, params *ListSplitsParams) (*ListResponse[PaymentSplit], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/payments/splits/paid"), params)
	return execute[ListResponse[PaymentSplit]](ctx, s.service, rb)
}

// GetReceived retrieves a split received by this account.
func (s *PaymentSplitService) GetReceived(ctx context.Context, id string) (*PaymentSplit, error) {
	rb := s.request(http.MethodGet, "v3/payments/splits/received/{id}").PathParam("id", id)
	return execute[PaymentSplit](ctx, s.service, rb)
}

// ListReceived returns splits received by this account.
func (s *PaymentSplitService) ListReceived(ctx context.Context, params *ListSplitsParams) (*ListResponse[PaymentSplit], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/payments/splits/received"), params)
	return execute[ListResponse[PaymentSplit]](ctx, s.service, rb)
}
