package asaas

import "encoding/json"

// Anticipation is an advance on a charge or installment plan.
type Anticipation struct {
	Object            string  `json:"object"`
	ID                string  `json:"id"`
	Installment       string  `json:"installment"`
	Payment           string  `json:"payment"`
	Status            string  `json:"status"`
	AnticipationDate  string  `json:"anticipationDate"`
	DueDate           string  `json:"dueDate"`
	RequestDate       string  `json:"requestDate"`
	Fee               float64 `json:"fee"`
	AnticipationDays  int     `json:"anticipationDays"`
	NetValue          float64 `json:"netValue"`
	TotalValue        float64 `json:"totalValue"`
	Value             float64 `json:"value"`
	DenialObservation string  `json:"denialObservation"`

	Extra map[string]json.RawMessage `json:"-"`
}

type anticipationAlias Anticipation

func (a *Anticipation) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*anticipationAlias)(a), &a.Extra)
}

// AnticipationCreateRequest requests an advance. Set Payment or Installment.
type AnticipationCreateRequest struct {
	Installment *string
	Payment     *string
	Documents   *File
}

// AnticipationSimulateRequest simulates an advance.
type AnticipationSimulateRequest struct {
	Installment *string `json:"installment,omitempty"`
	Payment     *string `json:"payment,omitempty"`
}

// AnticipationSimulation is the result of a simulation.
type AnticipationSimulation struct {
	Installment             string  `json:"installment"`
	Payment                 string  `json:"payment"`
	AnticipationDate        string  `json:"anticipationDate"`
	DueDate                 string  `json:"dueDate"`
	Fee                     float64 `json:"fee"`
	AnticipationDays        int     `json:"anticipationDays"`
	NetValue                float64 `json:"netValue"`
	TotalValue              float64 `json:"totalValue"`
	Value                   float64 `json:"value"`
	IsDocumentationRequired bool    `json:"isDocumentationRequired"`

	Extra map[string]json.RawMessage `json:"-"`
}

type anticipationSimulationAlias AnticipationSimulation

func (s *AnticipationSimulation) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*anticipationSimulationAlias)(s), &s.Extra)
}

// AnticipationConfiguration is the automatic anticipation setting.
type AnticipationConfiguration struct {
	CreditCardAutomaticEnabled bool `json:"creditCardAutomaticEnabled"`

	Extra map[string]json.RawMessage `json:"-"`
}

type anticipationConfigurationAlias AnticipationConfiguration

func (c *AnticipationConfiguration) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*anticipationConfigurationAlias)(c), &c.Extra)
}

// AnticipationConfigurationRequest toggles automatic anticipation.
type AnticipationConfigurationRequest struct {
	CreditCardAutomaticEnabled *bool `json:"creditCardAutomaticEnabled,omitempty"`
}

// AnticipationLimit is the available and total limit for one billing type.
type AnticipationLimit struct {
	Total     float64 `json:"total"`
	Available float64 `json:"available"`
}

// AnticipationLimits holds the anticipation limits of the account.
type AnticipationLimits struct {
	CreditCard *AnticipationLimit `json:"creditCard"`
	BankSlip   *AnticipationLimit `json:"bankSlip"`

	Extra map[string]json.RawMessage `json:"-"`
}

type anticipationLimitsAlias AnticipationLimits

func (l *AnticipationLimits) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*anticipationLimitsAlias)(l), &l.Extra)
}

// ListAnticipationsParams filters Anticipations.List.
type ListAnticipationsParams struct {
	Pagination
	Payment     *string `url:"payment"`
	Installment *string `url:"installment"`
	Status      *string `url:"status"`
}
