package asaas

import "encoding/json"

// Transfer is a payout to a bank account, a Pix key or another Asaas account.
type Transfer struct {
	Object                string       `json:"object"`
	ID                    string       `json:"id"`
	Type                  string       `json:"type"`
	DateCreated           string       `json:"dateCreated"`
	Value                 float64      `json:"value"`
	NetValue              float64      `json:"netValue"`
	Status                string       `json:"status"`
	TransferFee           float64      `json:"transferFee"`
	EffectiveDate         string       `json:"effectiveDate"`
	ScheduleDate          string       `json:"scheduleDate"`
	EndToEndIdentifier    string       `json:"endToEndIdentifier"`
	Authorized            bool         `json:"authorized"`
	FailReason            string       `json:"failReason"`
	TransactionReceiptURL string       `json:"transactionReceiptUrl"`
	OperationType         string       `json:"operationType"`
	Description           string       `json:"description"`
	ExternalReference     string       `json:"externalReference"`
	WalletID              string       `json:"walletId"`
	BankAccount           *BankAccount `json:"bankAccount"`

	Extra map[string]json.RawMessage `json:"-"`
}

type transferAlias Transfer

func (t *Transfer) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*transferAlias)(t), &t.Extra)
}

// Bank identifies a bank by its code.
type Bank struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
	Ispb string `json:"ispb,omitempty"`
}

// BankAccount is the destination of a bank transfer.
type BankAccount struct {
	Bank            *Bank   `json:"bank,omitempty"`
	AccountName     *string `json:"accountName,omitempty"`
	OwnerName       string  `json:"ownerName"`
	OwnerBirthDate  *string `json:"ownerBirthDate,omitempty"`
	CpfCnpj         string  `json:"cpfCnpj"`
	Agency          string  `json:"agency"`
	Account         string  `json:"account"`
	AccountDigit    string  `json:"accountDigit"`
	BankAccountType *string `json:"bankAccountType,omitempty"`
	Ispb            *string `json:"ispb,omitempty"`
}

// TransferRecurrence repeats a Pix transfer.
type TransferRecurrence struct {
	Frequency string `json:"frequency"`
	Quantity  int    `json:"quantity"`
}

// TransferCreateRequest sends money to another institution or a Pix key.
type TransferCreateRequest struct {
	Value float64 `json:"value"`

	BankAccount       *BankAccount        `json:"bankAccount,omitempty"`
	OperationType     *string             `json:"operationType,omitempty"`
	PixAddressKey     *string             `json:"pixAddressKey,omitempty"`
	PixAddressKeyType *string             `json:"pixAddressKeyType,omitempty"`
	Description       *string             `json:"description,omitempty"`
	ScheduleDate      *string             `json:"scheduleDate,omitempty"`
	ExternalReference *string             `json:"externalReference,omitempty"`
	Recurring         *TransferRecurrence `json:"recurring,omitempty"`
}

// InternalTransferRequest sends money to another Asaas account.
type InternalTransferRequest struct {
	Value    float64 `json:"value"`
	WalletID string  `json:"walletId"`

	ExternalReference *string `json:"externalReference,omitempty"`
}

// ListTransfersParams filters Transfers.List.
type ListTransfersParams struct {
	Pagination
	DateCreatedGe  *string `url:"dateCreated[ge]"`
	DateCreatedLe  *string `url:"dateCreated[le]"`
	TransferDateGe *string `url:"transferDate[ge]"`
	TransferDateLe *string `url:"transferDate[le]"`
	Type           *string `url:"type"`
}
