package asaas

import "encoding/json"

// AccountInfo is the commercial data of the account.
type AccountInfo struct {
	Status        string  `json:"status"`
	PersonType    string  `json:"personType"`
	CpfCnpj       string  `json:"cpfCnpj"`
	Name          string  `json:"name"`
	BirthDate     string  `json:"birthDate"`
	CompanyName   string  `json:"companyName"`
	CompanyType   string  `json:"companyType"`
	IncomeValue   float64 `json:"incomeValue"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	MobilePhone   string  `json:"mobilePhone"`
	Site          string  `json:"site"`
	PostalCode    string  `json:"postalCode"`
	Address       string  `json:"address"`
	AddressNumber string  `json:"addressNumber"`
	Complement    string  `json:"complement"`
	Province      string  `json:"province"`
	// City is sent back either as a city ID or as a name.
	City  json.RawMessage `json:"city"`
	State string          `json:"state"`

	Extra map[string]json.RawMessage `json:"-"`
}

type accountInfoAlias AccountInfo

func (a *AccountInfo) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*accountInfoAlias)(a), &a.Extra)
}

// AccountInfoUpdateRequest changes the commercial data of the account.
type AccountInfoUpdateRequest struct {
	PersonType    *string  `json:"personType,omitempty"`
	CpfCnpj       *string  `json:"cpfCnpj,omitempty"`
	BirthDate     *string  `json:"birthDate,omitempty"`
	CompanyType   *string  `json:"companyType,omitempty"`
	CompanyName   *string  `json:"companyName,omitempty"`
	IncomeValue   *float64 `json:"incomeValue,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	MobilePhone   *string  `json:"mobilePhone,omitempty"`
	Site          *string  `json:"site,omitempty"`
	PostalCode    *string  `json:"postalCode,omitempty"`
	Address       *string  `json:"address,omitempty"`
	AddressNumber *string  `json:"addressNumber,omitempty"`
	Complement    *string  `json:"complement,omitempty"`
	Province      *string  `json:"province,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
}

// PendingDocuments lists the documents the account still has to send.
type PendingDocuments struct {
	RejectReasons string            `json:"rejectReasons"`
	Data          []json.RawMessage `json:"data"`

	Extra map[string]json.RawMessage `json:"-"`
}

type pendingDocumentsAlias PendingDocuments

func (p *PendingDocuments) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*pendingDocumentsAlias)(p), &p.Extra)
}

// AccountDocument is a document sent for account approval.
type AccountDocument struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`

	Extra map[string]json.RawMessage `json:"-"`
}

type accountDocumentAlias AccountDocument

func (d *AccountDocument) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*accountDocumentAlias)(d), &d.Extra)
}

// AccountDocumentRequest sends or replaces a document file.
type AccountDocumentRequest struct {
	Type         *string
	DocumentFile *File
}

// Subaccount is a child account.
type Subaccount struct {
	Object        string `json:"object"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LoginEmail    string `json:"loginEmail"`
	Phone         string `json:"phone"`
	MobilePhone   string `json:"mobilePhone"`
	Address       string `json:"address"`
	AddressNumber string `json:"addressNumber"`
	Complement    string `json:"complement"`
	Province      string `json:"province"`
	PostalCode    string `json:"postalCode"`
	CpfCnpj       string `json:"cpfCnpj"`
	BirthDate     string `json:"birthDate"`
	PersonType    string `json:"personType"`
	CompanyType   string `json:"companyType"`
	WalletID      string `json:"walletId"`
	APIKey        string `json:"apiKey"`

	Extra map[string]json.RawMessage `json:"-"`
}

type subaccountAlias Subaccount

func (s *Subaccount) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*subaccountAlias)(s), &s.Extra)
}

// SubaccountCreateRequest creates a child account.
type SubaccountCreateRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	CpfCnpj       string  `json:"cpfCnpj"`
	MobilePhone   string  `json:"mobilePhone"`
	IncomeValue   float64 `json:"incomeValue"`
	Address       string  `json:"address"`
	AddressNumber string  `json:"addressNumber"`
	Province      string  `json:"province"`
	PostalCode    string  `json:"postalCode"`

	LoginEmail  *string `json:"loginEmail,omitempty"`
	BirthDate   *string `json:"birthDate,omitempty"`
	CompanyType *string `json:"companyType,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Site        *string `json:"site,omitempty"`
	Complement  *string `json:"complement,omitempty"`
}

// ListSubaccountsParams filters Subaccounts.List.
type ListSubaccountsParams struct {
	Pagination
	CpfCnpj  *string `url:"cpfCnpj"`
	Email    *string `url:"email"`
	Name     *string `url:"name"`
	WalletID *string `url:"walletId"`
}

// Notification is a customer notification setting for one event.
type Notification struct {
	Object                      string `json:"object"`
	ID                          string `json:"id"`
	Customer                    string `json:"customer"`
	Enabled                     bool   `json:"enabled"`
	EmailEnabledForProvider     bool   `json:"emailEnabledForProvider"`
	SmsEnabledForProvider       bool   `json:"smsEnabledForProvider"`
	EmailEnabledForCustomer     bool   `json:"emailEnabledForCustomer"`
	SmsEnabledForCustomer       bool   `json:"smsEnabledForCustomer"`
	PhoneCallEnabledForCustomer bool   `json:"phoneCallEnabledForCustomer"`
	WhatsappEnabledForCustomer  bool   `json:"whatsappEnabledForCustomer"`
	Event                       string `json:"event"`
	ScheduleOffset              int    `json:"scheduleOffset"`
	Deleted                     bool   `json:"deleted"`

	Extra map[string]json.RawMessage `json:"-"`
}

type notificationAlias Notification

func (n *Notification) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*notificationAlias)(n), &n.Extra)
}

// NotificationUpdateRequest changes a notification setting.
type NotificationUpdateRequest struct {
	Enabled                     *bool `json:"enabled,omitempty"`
	EmailEnabledForProvider     *bool `json:"emailEnabledForProvider,omitempty"`
	SmsEnabledForProvider       *bool `json:"smsEnabledForProvider,omitempty"`
	EmailEnabledForCustomer     *bool `json:"emailEnabledForCustomer,omitempty"`
	SmsEnabledForCustomer       *bool `json:"smsEnabledForCustomer,omitempty"`
	PhoneCallEnabledForCustomer *bool `json:"phoneCallEnabledForCustomer,omitempty"`
	WhatsappEnabledForCustomer  *bool `json:"whatsappEnabledForCustomer,omitempty"`
	ScheduleOffset              *int  `json:"scheduleOffset,omitempty"`
}

// NotificationBatchItem is one entry of a batch update.
type NotificationBatchItem struct {
	ID string `json:"id"`
	NotificationUpdateRequest
}

// NotificationBatchRequest updates several notifications of a customer.
type NotificationBatchRequest struct {
	Customer      string                  `json:"customer"`
	Notifications []NotificationBatchItem `json:"notifications,omitempty"`
}

// NotificationBatchResponse holds the updated notifications.
type NotificationBatchResponse struct {
	Notifications []Notification `json:"notifications"`

	Extra map[string]json.RawMessage `json:"-"`
}

type notificationBatchResponseAlias NotificationBatchResponse

func (r *NotificationBatchResponse) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*notificationBatchResponseAlias)(r), &r.Extra)
}
