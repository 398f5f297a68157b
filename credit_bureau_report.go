package asaas

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreditBureauReport is a credit consultation on a CPF or CNPJ.
type CreditBureauReport struct {
	ID      string          `json:"id"`
	CpfCnpj string          `json:"cpfCnpj"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`

	Extra map[string]json.RawMessage `json:"-"`
}

type creditBureauReportAlias CreditBureauReport

func (r *CreditBureauReport) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*creditBureauReportAlias)(r), &r.Extra)
}

// CreditBureauReportCreateRequest requests a new consultation.
type CreditBureauReportCreateRequest struct {
	CpfCnpj string `json:"cpfCnpj"`
}

// ListCreditBureauReportsParams filters CreditBureauReportService.List.
type ListCreditBureauReportsParams struct {
	Pagination
	StartDate *string `url:"startDate"`
	EndDate   *string `url:"endDate"`
}

// CreditBureauReportService manages consultations under v3/creditBureauReport.
type CreditBureauReportService struct{ service }

// List returns consultations matching params.
func (s *CreditBureauReportService) List(ctx context.Context, params *ListCreditBureauReportsParams) (*ListResponse[CreditBureauReport], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/creditBureauReport"), params)
	return execute[ListResponse[CreditBureauReport]](ctx, s.service, rb)
}

// Create requests a consultation.
func (s *CreditBureauReportService) Create(ctx context.Context, req *CreditBureauReportCreateRequest) (*CreditBureauReport, error) {
	rb := s.request(http.MethodPost, "v3/creditBureauReport").JSON(req)
	return execute[CreditBureauReport](ctx, s.service, rb)
}

// Get retrieves a consultation.
func (s *CreditBureauReportService) Get(ctx context.Context, id string) (*CreditBureauReport, error) {
	rb := s.request(http.MethodGet, "v3/creditBureauReport/{id}").PathParam("id", id)
	return execute[CreditBureauReport](ctx, s.service, rb)
}
