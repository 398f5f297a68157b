package asaas

import "encoding/json"

// Dunning types.
const (
	DunningTypeCreditBureau = "CREDIT_BUREAU"
)

// PaymentDunning is a negativation request for an overdue charge.
type PaymentDunning struct {
	ID                     string  `json:"id"`
	DunningNumber          int     `json:"dunningNumber"`
	Status                 string  `json:"status"`
	Type                   string  `json:"type"`
	RequestDate            string  `json:"requestDate"`
	Description            string  `json:"description"`
	Value                  float64 `json:"value"`
	FeeValue               float64 `json:"feeValue"`
	NetValue               float64 `json:"netValue"`
	ReceivedInCashFeeValue float64 `json:"receivedInCashFeeValue"`
	DenialReason           string  `json:"denialReason"`
	CancellationFeeValue   float64 `json:"cancellationFeeValue"`
	CanBeCancelled         bool    `json:"canBeCancelled"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentDunningAlias PaymentDunning

func (d *PaymentDunning) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentDunningAlias)(d), &d.Extra)
}

// PaymentDunningCreateRequest opens a dunning. It is sent as multipart form
// data; Description is always sent, empty when nil.
type PaymentDunningCreateRequest struct {
	Payment                string
	Type                   string
	CustomerName           string
	CustomerCpfCnpj        string
	CustomerPrimaryPhone   string
	CustomerPostalCode     string
	CustomerAddress        string
	CustomerAddressNumber  string
	CustomerProvince       string
	Description            *string
	CustomerSecondaryPhone *string
	CustomerComplement     *string
	Documents              *File
}

// ListPaymentDunningsParams filters PaymentDunningService.List.
type ListPaymentDunningsParams struct {
	Pagination
	Status           *string `url:"status"`
	Type             *string `url:"type"`
	Payment          *string `url:"payment"`
	RequestStartDate *string `url:"requestStartDate"`
	RequestEndDate   *string `url:"requestEndDate"`
}

// PaymentDunningSimulation is the estimate returned by a simulation.
type PaymentDunningSimulation struct {
	EstimatedValue float64 `json:"estimatedValue"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentDunningSimulationAlias PaymentDunningSimulation

func (s *PaymentDunningSimulation) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentDunningSimulationAlias)(s), &s.Extra)
}

// PaymentDunningStatus is returned by cancel and document resubmission.
type PaymentDunningStatus struct {
	Status string `json:"status"`
	Type   string `json:"type"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentDunningStatusAlias PaymentDunningStatus

func (s *PaymentDunningStatus) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentDunningStatusAlias)(s), &s.Extra)
}
