package asaas

import (
	"context"
	"encoding/json"
	"net/http"
)

// Bill is a bill payment made from the account balance.
type Bill struct {
	ID      string  `json:"id"`
	Value   float64 `json:"value"`
	DueDate string  `json:"dueDate"`
	Status  string  `json:"status"`

	Extra map[string]json.RawMessage `json:"-"`
}

type billAlias Bill

func (b *Bill) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*billAlias)(b), &b.Extra)
}

// BillCreateRequest schedules a bill payment.
type BillCreateRequest struct {
	Value       float64 `json:"value"`
	DueDate     string  `json:"dueDate"`
	Description *string `json:"description,omitempty"`
}

// BillSimulateRequest simulates a bill payment.
type BillSimulateRequest struct {
	Value   float64 `json:"value"`
	DueDate string  `json:"dueDate"`
}

// BillSimulation is the outcome of a simulated bill payment.
type BillSimulation struct {
	TotalValue float64 `json:"totalValue"`
	NetValue   float64 `json:"netValue"`
	Fees       float64 `json:"fees"`

	Extra map[string]json.RawMessage `json:"-"`
}

type billSimulationAlias BillSimulation

func (b *BillSimulation) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*billSimulationAlias)(b), &b.Extra)
}

// BillService manages bill payments under v3/bill.
type BillService struct{ service }

// List returns bill payments.
func (s *BillService) List(ctx context.Context, page *Pagination) (*ListResponse[Bill], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/bill"), page)
	return execute[ListResponse[Bill]](ctx, s.service, rb)
}

// Create schedules a bill payment.
func (s *BillService) Create(ctx context.Context, req *BillCreateRequest) (*Bill, error) {
	rb := s.request(http.MethodPost, "v3/bill").JSON(req)
	return execute[Bill](ctx, s.service, rb)
}

// Simulate returns the fees a bill payment would incur.
func (s *BillService) Simulate(ctx context.Context, req *BillSimulateRequest) (*BillSimulation, error) {
	rb := s.request(http.MethodPost, "v3/bill/simulate").JSON(req)
	return execute[BillSimulation](ctx, s.service, rb)
}

// Get retrieves a bill payment.
func (s *BillService) Get(ctx context.Context, id string) (*Bill, error) {
	rb := s.request(http.MethodGet, "v3/bill/{id}").PathParam("id", id)
	return execute[Bill](ctx, s.service, rb)
}

// Cancel cancels a scheduled bill payment.
func (s *BillService) Cancel(ctx context.Context, id string) (*Bill, error) {
	rb := s.request(http.MethodPost, "v3/bill/{id}/cancel").PathParam("id", id)
	return execute[Bill](ctx, s.service, rb)
}
