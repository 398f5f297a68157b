package asaas

import "encoding/json"

// Installment groups the charges of an installment plan.
type Installment struct {
	Object                string  `json:"object"`
	ID                    string  `json:"id"`
	Value                 float64 `json:"value"`
	NetValue              float64 `json:"netValue"`
	PaymentValue          float64 `json:"paymentValue"`
	InstallmentCount      int     `json:"installmentCount"`
	BillingType           string  `json:"billingType"`
	PaymentDate           string  `json:"paymentDate"`
	Description           string  `json:"description"`
	ExpirationDay         int     `json:"expirationDay"`
	DateCreated           string  `json:"dateCreated"`
	Customer              string  `json:"customer"`
	PaymentLink           string  `json:"paymentLink"`
	TransactionReceiptURL string  `json:"transactionReceiptUrl"`
	Deleted               bool    `json:"deleted"`

	Extra map[string]json.RawMessage `json:"-"`
}

type installmentAlias Installment

func (i *Installment) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*installmentAlias)(i), &i.Extra)
}

// InstallmentCreateRequest creates an installment plan.
type InstallmentCreateRequest struct {
	InstallmentCount int     `json:"installmentCount"`
	Customer         string  `json:"customer"`
	Value            float64 `json:"value"`
	BillingType      string  `json:"billingType"`
	DueDate          string  `json:"dueDate"`

	TotalValue    *float64  `json:"totalValue,omitempty"`
	Description   *string   `json:"description,omitempty"`
	PostalService *bool     `json:"postalService,omitempty"`
	Discount      *Discount `json:"discount,omitempty"`
	Interest      *Interest `json:"interest,omitempty"`
	Fine          *Fine     `json:"fine,omitempty"`
	Split         []Split   `json:"split,omitempty"`
}

// InstallmentPaymentsParams filters Installments.ListPayments.
type InstallmentPaymentsParams struct {
	Status *string `url:"status"`
}

// PaymentBookParams orders the pages of an installment payment book.
type PaymentBookParams struct {
	Sort  *string `url:"sort"`
	Order *string `url:"order"`
}
