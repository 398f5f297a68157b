package asaas

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// PaymentDunningService manages dunnings under v3/paymentDunnings.
type PaymentDunningService struct{ service }

// List returns dunnings matching params.
func (s *PaymentDunningService) List(ctx context.Context, params *ListPaymentDunningsParams) (*ListResponse[PaymentDunning], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/paymentDunnings"), params)
	return execute[ListResponse[PaymentDunning]](ctx, s.service, rb)
}

// Create opens a dunning for an overdue charge.
func (s *PaymentDunningService) Create(ctx context.Context, req *PaymentDunningCreateRequest) (*PaymentDunning, error) {
	if req == nil {
		req = &PaymentDunningCreateRequest{}
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	form := api.NewMultipartForm().
		Field("payment", req.Payment).
		Field("type", req.Type).
		Field("description", description).
		Field("customerName", req.CustomerName).
		Field("customerCpfCnpj", req.CustomerCpfCnpj).
		Field("customerPrimaryPhone", req.CustomerPrimaryPhone).
		Field("customerPostalCode", req.CustomerPostalCode).
		Field("customerAddress", req.CustomerAddress).
		Field("customerAddressNumber", req.CustomerAddressNumber).
		Field("customerProvince", req.CustomerProvince).
		Field("customerSecondaryPhone", req.CustomerSecondaryPhone).
		Field("customerComplement", req.CustomerComplement)
	name, content := req.Documents.part()
	form.File("documents", name, content)

	rb := s.request(http.MethodPost, "v3/paymentDunnings").Multipart(form)
	return execute[PaymentDunning](ctx, s.service, rb)
}

// Simulate estimates the cost of a dunning for a charge. body is optional and
// sent as JSON when non-nil.
func (s *PaymentDunningService) Simulate(ctx context.Context, paymentID string, body any) (*PaymentDunningSimulation, error) {
	rb := s.request(http.MethodPost, "v3/paymentDunnings/simulate").
		OptionalQuery("payment", optionalString(paymentID)).
		JSON(body)
	return execute[PaymentDunningSimulation](ctx, s.service, rb)
}

// Get retrieves a dunning.
func (s *PaymentDunningService) Get(ctx context.Context, id string) (*PaymentDunning, error) {
	rb := s.request(http.MethodGet, "v3/paymentDunnings/{id}").PathParam("id", id)
	return execute[PaymentDunning](ctx, s.service, rb)
}

// ListHistory returns the event history of a dunning.
func (s *PaymentDunningService) ListHistory(ctx context.Context, id string, page *Pagination) (*ListResponse[json.RawMessage], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/paymentDunnings/{id}/history").PathParam("id", id), page)
	return execute[ListResponse[json.RawMessage]](ctx, s.service, rb)
}

// ListPartialPayments returns payments received while the dunning was open.
func (s *PaymentDunningService) ListPartialPayments(ctx context.Context, id string, page *Pagination) (*ListResponse[json.RawMessage], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/paymentDunnings/{id}/partialPayments").PathParam("id", id), page)
	return execute[ListResponse[json.RawMessage]](ctx, s.service, rb)
}

// ListAvailablePayments returns charges that can be sent to dunning.
func (s *PaymentDunningService) ListAvailablePayments(ctx context.Context, page *Pagination) (*ListResponse[json.RawMessage], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/paymentDunnings/paymentsAvailableForDunning"), page)
	return execute[ListResponse[json.RawMessage]](ctx, s.service, rb)
}

// ResendDocuments uploads new supporting documents for a dunning.
func (s *PaymentDunningService) ResendDocuments(ctx context.Context, id string, documents File) (*PaymentDunningStatus, error) {
	form := api.NewMultipartForm().File("documents", documents.Name, documents.Content)
	rb := s.request(http.MethodPost, "v3/paymentDunnings/{id}/documents").PathParam("id", id).Multipart(form)
	return execute[PaymentDunningStatus](ctx, s.service, rb)
}

// Cancel cancels a dunning.
func (s *PaymentDunningService) Cancel(ctx context.Context, id string) (*PaymentDunningStatus, error) {
	rb := s.request(http.MethodPost, "v3/paymentDunnings/{id}/cancel").PathParam("id", id)
	return execute[PaymentDunningStatus](ctx, s.service, rb)
}
