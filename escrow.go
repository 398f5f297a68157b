package asaas

import (
	"context"
	"net/http"
)

// EscrowService manages funds held in the escrow account.
type EscrowService struct{ service }

// FinishPaymentEscrow releases the escrowed value of a charge.
func (s *EscrowService) FinishPaymentEscrow(ctx context.Context, paymentID string) (*Payment, error) {
	rb := s.request(http.MethodPost, "v3/escrow/{id}/finish").PathParam("id", paymentID)
	return execute[Payment](ctx, s.service, rb)
}
