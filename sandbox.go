package asaas

import (
	"context"
	"net/http"
)

// SandboxService drives charges through states that only the sandbox
// environment allows forcing.
type SandboxService struct{ service }

// ConfirmPayment marks a charge as paid.
func (s *SandboxService) ConfirmPayment(ctx context.Context, paymentID string) (*Payment, error) {
	rb := s.request(http.MethodPost, "v3/sandbox/payment/{id}/confirm").PathParam("id", paymentID)
	return execute[Payment](ctx, s.service, rb)
}

// ForceOverdue moves a charge to overdue.
func (s *SandboxService) ForceOverdue(ctx context.Context, paymentID string) (*Payment, error) {
	rb := s.request(http.MethodPost, "v3/sandbox/payment/{id}/overdue").PathParam("id", paymentID)
	return execute[Payment](ctx, s.service, rb)
}
