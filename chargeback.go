package asaas

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// ChargebackDispute is the result of opening a dispute.
type ChargebackDispute struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	Extra map[string]json.RawMessage `json:"-"`
}

type chargebackDisputeAlias ChargebackDispute

func (d *ChargebackDispute) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*chargebackDisputeAlias)(d), &d.Extra)
}

// ChargebackService manages card chargebacks.
type ChargebackService struct{ service }

// CreateDispute contests a chargeback. files may be nil.
func (s *ChargebackService) CreateDispute(ctx context.Context, id string, files *File) (*ChargebackDispute, error) {
	name, content := files.part()
	form := api.NewMultipartForm().File("files", name, content)

	rb := s.request(http.MethodPost, "v3/chargebacks/{id}/dispute").PathParam("id", id).Multipart(form)
	return execute[ChargebackDispute](ctx, s.service, rb)
}

// List returns the chargebacks of the account.
func (s *ChargebackService) List(ctx context.Context, page *Pagination) (*ListResponse[Chargeback], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/chargebacks/"), page)
	return execute[ListResponse[Chargeback]](ctx, s.service, rb)
}

// Get returns the chargeback of a charge.
func (s *ChargebackService) Get(ctx context.Context, paymentID string) (*Chargeback, error) {
	rb := s.request(http.MethodGet, "v3/payments/{id}/chargeback").PathParam("id", paymentID)
	return execute[Chargeback](ctx, s.service, rb)
}
