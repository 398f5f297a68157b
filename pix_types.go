package asaas

import "encoding/json"

// Pix key types.
const (
	PixKeyTypeCPF   = "CPF"
	PixKeyTypeCNPJ  = "CNPJ"
	PixKeyTypeEmail = "EMAIL"
	PixKeyTypePhone = "PHONE"
	PixKeyTypeEVP   = "EVP"
)

// PixKey is a Pix address key of the account.
type PixKey struct {
	ID                    string `json:"id"`
	Type                  string `json:"type"`
	Key                   string `json:"key"`
	Status                string `json:"status"`
	DateCreated           string `json:"dateCreated"`
	CanBeDeleted          bool   `json:"canBeDeleted"`
	CannotBeDeletedReason string `json:"cannotBeDeletedReason"`

	Extra map[string]json.RawMessage `json:"-"`
}

type pixKeyAlias PixKey

func (k *PixKey) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*pixKeyAlias)(k), &k.Extra)
}

// PixKeyCreateRequest creates a Pix key. Only EVP keys can be created
// through the API.
type PixKeyCreateRequest struct {
	Type string `json:"type"`
}

// ListPixKeysParams filters Pix.ListKeys.
type ListPixKeysParams struct {
	Pagination
	StatusList *string `url:"statusList"`
	Status     *string `url:"status"`
}

// StaticQrCodeRequest creates a static Pix QR code.
type StaticQrCodeRequest struct {
	AddressKey        *string  `json:"addressKey,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Value             *float64 `json:"value,omitempty"`
	Format            *string  `json:"format,omitempty"`
	ExpirationDate    *string  `json:"expirationDate,omitempty"`
	ExpirationSeconds *int     `json:"expirationSeconds,omitempty"`
	AllowsMultipleUse *bool    `json:"allowsMultipleUse,omitempty"`
	ExternalReference *string  `json:"externalReference,omitempty"`
}

// StaticQrCode is a created static Pix QR code.
type StaticQrCode struct {
	ID             string  `json:"id"`
	AddressKey     string  `json:"addressKey"`
	Description    string  `json:"description"`
	Value          float64 `json:"value"`
	EncodedImage   string  `json:"encodedImage"`
	QrCode         string  `json:"qrCode"`
	Payload        string  `json:"payload"`
	DateCreated    string  `json:"dateCreated"`
	ExpirationDate string  `json:"expirationDate"`

	Extra map[string]json.RawMessage `json:"-"`
}

type staticQrCodeAlias StaticQrCode

func (q *StaticQrCode) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*staticQrCodeAlias)(q), &q.Extra)
}

// StaticQrCodeDeleteResponse is returned when a static QR code is removed.
type StaticQrCodeDeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`

	Extra map[string]json.RawMessage `json:"-"`
}

type staticQrCodeDeleteResponseAlias StaticQrCodeDeleteResponse

func (r *StaticQrCodeDeleteResponse) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*staticQrCodeDeleteResponseAlias)(r), &r.Extra)
}

// PixTokenBucket reports how many Pix key lookups are still available.
type PixTokenBucket struct {
	Available       bool `json:"available"`
	TokensAvailable int  `json:"tokensAvailable"`

	Extra map[string]json.RawMessage `json:"-"`
}

type pixTokenBucketAlias PixTokenBucket

func (b *PixTokenBucket) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*pixTokenBucketAlias)(b), &b.Extra)
}

// PixQrCodePayment identifies the QR code paid by PixTransactions.PayQrCode.
type PixQrCodePayment struct {
	Payload     string   `json:"payload"`
	ChangeValue *float64 `json:"changeValue,omitempty"`
}

// PixPayQrCodeRequest pays a Pix QR code.
type PixPayQrCodeRequest struct {
	QrCode PixQrCodePayment `json:"qrCode"`
	Value  float64          `json:"value"`

	Description  *string `json:"description,omitempty"`
	ScheduleDate *string `json:"scheduleDate,omitempty"`
}

// PixDecodeQrCodeRequest decodes a Pix QR code payload.
type PixDecodeQrCodeRequest struct {
	Payload     string   `json:"payload"`
	ChangeValue *float64 `json:"changeValue,omitempty"`
}

// DecodedPixQrCode is the content of a Pix QR code.
type DecodedPixQrCode struct {
	Payload                string  `json:"payload"`
	Type                   string  `json:"type"`
	TransactionOriginType  string  `json:"transactionOriginType"`
	PixKey                 string  `json:"pixKey"`
	ConciliationIdentifier string  `json:"conciliationIdentifier"`
	DueDate                string  `json:"dueDate"`
	ExpirationDate         string  `json:"expirationDate"`
	Finality               string  `json:"finality"`
	Value                  float64 `json:"value"`
	ChangeValue            float64 `json:"changeValue"`
	Interest               float64 `json:"interest"`
	Fine                   float64 `json:"fine"`
	Discount               float64 `json:"discount"`
	TotalValue             float64 `json:"totalValue"`
	CanBePaid              bool    `json:"canBePaid"`
	CannotBePaidReason     string  `json:"cannotBePaidReason"`

	Extra map[string]json.RawMessage `json:"-"`
}

type decodedPixQrCodeAlias DecodedPixQrCode

func (q *DecodedPixQrCode) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*decodedPixQrCodeAlias)(q), &q.Extra)
}

// PixTransaction is a Pix debit or credit.
type PixTransaction struct {
	ID                     string  `json:"id"`
	EndToEndIdentifier     string  `json:"endToEndIdentifier"`
	Finality               string  `json:"finality"`
	Value                  float64 `json:"value"`
	ChangeValue            float64 `json:"changeValue"`
	RefundedValue          float64 `json:"refundedValue"`
	EffectiveDate          string  `json:"effectiveDate"`
	ScheduledDate          string  `json:"scheduledDate"`
	Status                 string  `json:"status"`
	Type                   string  `json:"type"`
	OriginType             string  `json:"originType"`
	ConciliationIdentifier string  `json:"conciliationIdentifier"`
	Description            string  `json:"description"`
	TransactionReceiptURL  string  `json:"transactionReceiptUrl"`
	CanBeCanceled          bool    `json:"canBeCanceled"`
	Payment                string  `json:"payment"`

	Extra map[string]json.RawMessage `json:"-"`
}

type pixTransactionAlias PixTransaction

func (t *PixTransaction) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*pixTransactionAlias)(t), &t.Extra)
}

// ListPixTransactionsParams filters PixTransactions.List.
type ListPixTransactionsParams struct {
	Pagination
	Status             *string `url:"status"`
	Type               *string `url:"type"`
	EndToEndIdentifier *string `url:"endToEndIdentifier"`
}

// ExternalAccount is the counterpart of a recurring Pix.
type ExternalAccount struct {
	Name          string `json:"name"`
	CpfCnpj       string `json:"cpfCnpj"`
	AgencyName    string `json:"agencyName"`
	PixKey        string `json:"pixKey"`
	PixKeyType    string `json:"pixKeyType"`
	AccountNumber string `json:"accountNumber"`

	Extra map[string]json.RawMessage `json:"-"`
}

type externalAccountAlias ExternalAccount

func (a *ExternalAccount) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*externalAccountAlias)(a), &a.Extra)
}

// RecurringPix is a Pix recurrence.
type RecurringPix struct {
	ID              string           `json:"id"`
	Status          string           `json:"status"`
	Origin          string           `json:"origin"`
	Value           float64          `json:"value"`
	Frequency       string           `json:"frequency"`
	Quantity        int              `json:"quantity"`
	StartDate       string           `json:"startDate"`
	FinishDate      string           `json:"finishDate"`
	CanBeCancelled  bool             `json:"canBeCancelled"`
	ExternalAccount *ExternalAccount `json:"externalAccount"`

	Extra map[string]json.RawMessage `json:"-"`
}

type recurringPixAlias RecurringPix

func (r *RecurringPix) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*recurringPixAlias)(r), &r.Extra)
}

// RecurringPixItem is one scheduled transaction of a recurrence.
type RecurringPixItem struct {
	ID                       string           `json:"id"`
	Status                   string           `json:"status"`
	ScheduledDate            string           `json:"scheduledDate"`
	CanBeCancelled           bool             `json:"canBeCancelled"`
	RecurrenceNumber         int              `json:"recurrenceNumber"`
	Quantity                 int              `json:"quantity"`
	Value                    float64          `json:"value"`
	RefusalReasonDescription string           `json:"refusalReasonDescription"`
	ExternalAccount          *ExternalAccount `json:"externalAccount"`

	Extra map[string]json.RawMessage `json:"-"`
}

type recurringPixItemAlias RecurringPixItem

func (i *RecurringPixItem) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*recurringPixItemAlias)(i), &i.Extra)
}

// ListRecurringPixParams filters RecurringPix.List.
type ListRecurringPixParams struct {
	Pagination
	Status     *string  `url:"status"`
	Value      *float64 `url:"value"`
	SearchText *string  `url:"searchText"`
}
