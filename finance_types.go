package asaas

import "encoding/json"

// Balance is the account balance.
type Balance struct {
	Balance float64 `json:"balance"`

	Extra map[string]json.RawMessage `json:"-"`
}

type balanceAlias Balance

func (b *Balance) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*balanceAlias)(b), &b.Extra)
}

// PaymentStatistics aggregates the charges matching a filter.
type PaymentStatistics struct {
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
	NetValue float64 `json:"netValue"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentStatisticsAlias PaymentStatistics

func (s *PaymentStatistics) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentStatisticsAlias)(s), &s.Extra)
}

// PaymentStatisticsParams filters Finance.PaymentStatistics.
type PaymentStatisticsParams struct {
	Customer              *string `url:"customer"`
	Anticipated           *bool   `url:"anticipated"`
	DateCreatedGe         *string `url:"dateCreated[ge]"`
	DateCreatedLe         *string `url:"dateCreated[le]"`
	DueDateGe             *string `url:"dueDate[ge]"`
	DueDateLe             *string `url:"dueDate[le]"`
	EstimatedCreditDateGe *string `url:"estimatedCreditDate[ge]"`
	EstimatedCreditDateLe *string `url:"estimatedCreditDate[le]"`
	ExternalReference     *string `url:"externalReference"`
	BillingType           *string `url:"billingType"`
	Status                *string `url:"status"`
}

// SplitStatistics holds the split values to receive and to pay.
type SplitStatistics struct {
	Income float64 `json:"income"`
	Value  float64 `json:"value"`

	Extra map[string]json.RawMessage `json:"-"`
}

type splitStatisticsAlias SplitStatistics

func (s *SplitStatistics) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*splitStatisticsAlias)(s), &s.Extra)
}

// FinancialTransaction is one entry of the account statement.
type FinancialTransaction struct {
	Object         string  `json:"object"`
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	Value          float64 `json:"value"`
	Balance        float64 `json:"balance"`
	Description    string  `json:"description"`
	PaymentID      string  `json:"paymentId"`
	SplitID        string  `json:"splitId"`
	TransferID     string  `json:"transferId"`
	AnticipationID string  `json:"anticipationId"`
	BillID         string  `json:"billId"`
	InvoiceID      string  `json:"invoiceId"`

	Extra map[string]json.RawMessage `json:"-"`
}

type financialTransactionAlias FinancialTransaction

func (t *FinancialTransaction) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*financialTransactionAlias)(t), &t.Extra)
}

// ListFinancialTransactionsParams filters FinancialTransactions.List.
type ListFinancialTransactionsParams struct {
	Pagination
	StartDate  *string `url:"startDate"`
	FinishDate *string `url:"finishDate"`
	// Order is "asc" or "desc".
	Order *string `url:"order"`
}
