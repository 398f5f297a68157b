package asaas

import "encoding/json"

// Billing types.
const (
	BillingTypeUndefined  = "UNDEFINED"
	BillingTypeBoleto     = "BOLETO"
	BillingTypeCreditCard = "CREDIT_CARD"
	BillingTypePix        = "PIX"
)

// Discount is the early-payment discount of a charge.
type Discount struct {
	Value            float64 `json:"value"`
	DueDateLimitDays *int    `json:"dueDateLimitDays,omitempty"`
	// Type is FIXED or PERCENTAGE.
	Type *string `json:"type,omitempty"`
}

// Interest is the monthly interest applied after the due date.
type Interest struct {
	Value float64 `json:"value"`
}

// Fine is the late-payment fine.
type Fine struct {
	Value float64 `json:"value"`
	Type  *string `json:"type,omitempty"`
}

// Split sends part of a payment to another Asaas wallet.
type Split struct {
	WalletID          string   `json:"walletId"`
	FixedValue        *float64 `json:"fixedValue,omitempty"`
	PercentualValue   *float64 `json:"percentualValue,omitempty"`
	TotalFixedValue   *float64 `json:"totalFixedValue,omitempty"`
	ExternalReference *string  `json:"externalReference,omitempty"`
	Description       *string  `json:"description,omitempty"`
}

// Callback redirects the payer after a successful payment.
type Callback struct {
	SuccessURL   string `json:"successUrl"`
	AutoRedirect *bool  `json:"autoRedirect,omitempty"`
}

// Payment is a charge.
type Payment struct {
	Object                string    `json:"object"`
	ID                    string    `json:"id"`
	DateCreated           string    `json:"dateCreated"`
	Customer              string    `json:"customer"`
	Subscription          string    `json:"subscription"`
	Installment           string    `json:"installment"`
	CheckoutSession       string    `json:"checkoutSession"`
	PaymentLink           string    `json:"paymentLink"`
	Value                 float64   `json:"value"`
	NetValue              float64   `json:"netValue"`
	OriginalValue         float64   `json:"originalValue"`
	InterestValue         float64   `json:"interestValue"`
	Description           string    `json:"description"`
	BillingType           string    `json:"billingType"`
	Status                string    `json:"status"`
	DueDate               string    `json:"dueDate"`
	OriginalDueDate       string    `json:"originalDueDate"`
	PaymentDate           string    `json:"paymentDate"`
	ClientPaymentDate     string    `json:"clientPaymentDate"`
	CreditDate            string    `json:"creditDate"`
	EstimatedCreditDate   string    `json:"estimatedCreditDate"`
	InvoiceURL            string    `json:"invoiceUrl"`
	BankSlipURL           string    `json:"bankSlipUrl"`
	TransactionReceiptURL string    `json:"transactionReceiptUrl"`
	InvoiceNumber         string    `json:"invoiceNumber"`
	ExternalReference     string    `json:"externalReference"`
	Deleted               bool      `json:"deleted"`
	Anticipated           bool      `json:"anticipated"`
	Anticipable           bool      `json:"anticipable"`
	PostalService         bool      `json:"postalService"`
	Discount              *Discount `json:"discount"`
	Fine                  *Fine     `json:"fine"`
	Interest              *Interest `json:"interest"`
	Split                 []Split   `json:"split"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentAlias Payment

func (p *Payment) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentAlias)(p), &p.Extra)
}

// PaymentCreateRequest creates a charge.
type PaymentCreateRequest struct {
	Customer    string  `json:"customer"`
	BillingType string  `json:"billingType"`
	Value       float64 `json:"value"`
	DueDate     string  `json:"dueDate"`

	Description                                *string   `json:"description,omitempty"`
	DaysAfterDueDateToRegistrationCancellation *int      `json:"daysAfterDueDateToRegistrationCancellation,omitempty"`
	ExternalReference                          *string   `json:"externalReference,omitempty"`
	InstallmentCount                           *int      `json:"installmentCount,omitempty"`
	TotalValue                                 *float64  `json:"totalValue,omitempty"`
	InstallmentValue                           *float64  `json:"installmentValue,omitempty"`
	Discount                                   *Discount `json:"discount,omitempty"`
	Interest                                   *Interest `json:"interest,omitempty"`
	Fine                                       *Fine     `json:"fine,omitempty"`
	PostalService                              *bool     `json:"postalService,omitempty"`
	Split                                      []Split   `json:"split,omitempty"`
	Callback                                   *Callback `json:"callback,omitempty"`
}

// PaymentUpdateRequest changes an existing charge. Nil fields are left as
// they are.
type PaymentUpdateRequest struct {
	BillingType       *string   `json:"billingType,omitempty"`
	Value             *float64  `json:"value,omitempty"`
	DueDate           *string   `json:"dueDate,omitempty"`
	Description       *string   `json:"description,omitempty"`
	ExternalReference *string   `json:"externalReference,omitempty"`
	Discount          *Discount `json:"discount,omitempty"`
	Interest          *Interest `json:"interest,omitempty"`
	Fine              *Fine     `json:"fine,omitempty"`
	PostalService     *bool     `json:"postalService,omitempty"`
	Split             []Split   `json:"split,omitempty"`
	Callback          *Callback `json:"callback,omitempty"`
}

// ListPaymentsParams filters Payments.List and LeanPayments.List.
type ListPaymentsParams struct {
	Pagination
	Customer              *string `url:"customer"`
	CustomerGroupName     *string `url:"customerGroupName"`
	BillingType           *string `url:"billingType"`
	Status                *string `url:"status"`
	Subscription          *string `url:"subscription"`
	Installment           *string `url:"installment"`
	ExternalReference     *string `url:"externalReference"`
	PaymentDate           *string `url:"paymentDate"`
	InvoiceStatus         *string `url:"invoiceStatus"`
	EstimatedCreditDate   *string `url:"estimatedCreditDate"`
	PixQrCodeID           *string `url:"pixQrCodeId"`
	Anticipated           *bool   `url:"anticipated"`
	Anticipable           *bool   `url:"anticipable"`
	DateCreatedGe         *string `url:"dateCreated[ge]"`
	DateCreatedLe         *string `url:"dateCreated[le]"`
	PaymentDateGe         *string `url:"paymentDate[ge]"`
	PaymentDateLe         *string `url:"paymentDate[le]"`
	EstimatedCreditDateGe *string `url:"estimatedCreditDate[ge]"`
	EstimatedCreditDateLe *string `url:"estimatedCreditDate[le]"`
	DueDateGe             *string `url:"dueDate[ge]"`
	DueDateLe             *string `url:"dueDate[le]"`
	User                  *string `url:"user"`
}

// PaymentLean is the summary form of a charge returned by LeanPayments.
type PaymentLean struct {
	Object         string  `json:"object"`
	ID             string  `json:"id"`
	DateCreated    string  `json:"dateCreated"`
	CustomerID     string  `json:"customerId"`
	SubscriptionID string  `json:"subscriptionId"`
	InstallmentID  string  `json:"installmentId"`
	PaymentLinkID  string  `json:"paymentLinkId"`
	Value          float64 `json:"value"`
	NetValue       float64 `json:"netValue"`
	OriginalValue  float64 `json:"originalValue"`
	InterestValue  float64 `json:"interestValue"`
	Description    string  `json:"description"`
	BillingType    string  `json:"billingType"`
	Status         string  `json:"status"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentLeanAlias PaymentLean

func (p *PaymentLean) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentLeanAlias)(p), &p.Extra)
}

// PaymentRefund is one refund of a charge.
type PaymentRefund struct {
	DateCreated           string            `json:"dateCreated"`
	Status                string            `json:"status"`
	Value                 float64           `json:"value"`
	EndToEndIdentifier    string            `json:"endToEndIdentifier"`
	Description           string            `json:"description"`
	EffectiveDate         string            `json:"effectiveDate"`
	TransactionReceiptURL string            `json:"transactionReceiptUrl"`
	RefundedSplits        []json.RawMessage `json:"refundedSplits"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentRefundAlias PaymentRefund

func (r *PaymentRefund) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentRefundAlias)(r), &r.Extra)
}

// PaymentRefundRequest is the optional body of a bank slip refund.
type PaymentRefundRequest struct {
	Value       *float64 `json:"value,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// BankSlipRefund carries the page where the payer enters refund details.
type BankSlipRefund struct {
	RequestURL string `json:"requestUrl"`

	Extra map[string]json.RawMessage `json:"-"`
}

type bankSlipRefundAlias BankSlipRefund

func (r *BankSlipRefund) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*bankSlipRefundAlias)(r), &r.Extra)
}

// Payment document types.
const (
	DocumentTypeInvoice     = "INVOICE"
	DocumentTypeContract    = "CONTRACT"
	DocumentTypeMedia       = "MEDIA"
	DocumentTypeDocument    = "DOCUMENT"
	DocumentTypeSpreadsheet = "SPREADSHEET"
	DocumentTypeProgram     = "PROGRAM"
	DocumentTypeOther       = "OTHER"
)

// DocumentFile describes a stored file.
type DocumentFile struct {
	PublicID     string `json:"publicId"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Extension    string `json:"extension"`
	PreviewURL   string `json:"previewUrl"`
	DownloadURL  string `json:"downloadUrl"`

	Extra map[string]json.RawMessage `json:"-"`
}

type documentFileAlias DocumentFile

func (f *DocumentFile) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*documentFileAlias)(f), &f.Extra)
}

// PaymentDocument is a file attached to a charge.
type PaymentDocument struct {
	Object                string        `json:"object"`
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Type                  string        `json:"type"`
	AvailableAfterPayment bool          `json:"availableAfterPayment"`
	File                  *DocumentFile `json:"file"`
	Deleted               bool          `json:"deleted"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentDocumentAlias PaymentDocument

func (d *PaymentDocument) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentDocumentAlias)(d), &d.Extra)
}

// PaymentDocumentUploadRequest uploads a file to a charge.
type PaymentDocumentUploadRequest struct {
	AvailableAfterPayment bool
	Type                  string
	File                  File
}

// PaymentDocumentUpdateRequest changes the settings of a charge document.
type PaymentDocumentUpdateRequest struct {
	AvailableAfterPayment bool   `json:"availableAfterPayment"`
	Type                  string `json:"type"`
}

// PaymentSplit is a split as seen by the payer or the receiver.
type PaymentSplit struct {
	ID                 string  `json:"id"`
	WalletID           string  `json:"walletId"`
	FixedValue         float64 `json:"fixedValue"`
	PercentualValue    float64 `json:"percentualValue"`
	TotalValue         float64 `json:"totalValue"`
	CancellationReason string  `json:"cancellationReason"`
	Status             string  `json:"status"`
	ExternalReference  string  `json:"externalReference"`
	Description        string  `json:"description"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentSplitAlias PaymentSplit

func (s *PaymentSplit) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentSplitAlias)(s), &s.Extra)
}

// ListSplitsParams filters paid and received splits.
type ListSplitsParams struct {
	Pagination
	PaymentID              *string `url:"paymentId"`
	Status                 *string `url:"status"`
	PaymentConfirmedDateGe *string `url:"paymentConfirmedDate[ge]"`
	PaymentConfirmedDateLe *string `url:"paymentConfirmedDate[le]"`
	CreditDateGe           *string `url:"creditDate[ge]"`
	CreditDateLe           *string `url:"creditDate[le]"`
}

// Chargeback is a card dispute opened against a charge.
type Chargeback struct {
	ID      string  `json:"id"`
	Payment string  `json:"payment"`
	Status  string  `json:"status"`
	Reason  string  `json:"reason"`
	Value   float64 `json:"value"`
	Date    string  `json:"date"`

	Extra map[string]json.RawMessage `json:"-"`
}

type chargebackAlias Chargeback

func (c *Chargeback) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*chargebackAlias)(c), &c.Extra)
}
