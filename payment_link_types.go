package asaas

import "encoding/json"

// Payment link charge types.
const (
	ChargeTypeDetached    = "DETACHED"
	ChargeTypeRecurrent   = "RECURRENT"
	ChargeTypeInstallment = "INSTALLMENT"
)

// PaymentLink is a shareable checkout page.
type PaymentLink struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Value               float64 `json:"value"`
	Active              bool    `json:"active"`
	ChargeType          string  `json:"chargeType"`
	URL                 string  `json:"url"`
	BillingType         string  `json:"billingType"`
	SubscriptionCycle   string  `json:"subscriptionCycle"`
	Description         string  `json:"description"`
	EndDate             string  `json:"endDate"`
	Deleted             bool    `json:"deleted"`
	ViewCount           int     `json:"viewCount"`
	MaxInstallmentCount int     `json:"maxInstallmentCount"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentLinkAlias PaymentLink

func (l *PaymentLink) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentLinkAlias)(l), &l.Extra)
}

// PaymentLinkCreateRequest creates a payment link.
type PaymentLinkCreateRequest struct {
	Name                string    `json:"name"`
	BillingType         string    `json:"billingType"`
	ChargeType          string    `json:"chargeType"`
	Description         *string   `json:"description,omitempty"`
	EndDate             *string   `json:"endDate,omitempty"`
	Value               *float64  `json:"value,omitempty"`
	DueDateLimitDays    *int      `json:"dueDateLimitDays,omitempty"`
	SubscriptionCycle   *string   `json:"subscriptionCycle,omitempty"`
	MaxInstallmentCount *int      `json:"maxInstallmentCount,omitempty"`
	ExternalReference   *string   `json:"externalReference,omitempty"`
	NotificationEnabled *bool     `json:"notificationEnabled,omitempty"`
	Callback            *Callback `json:"callback,omitempty"`
	IsAddressRequired   *bool     `json:"isAddressRequired,omitempty"`
}

// PaymentLinkUpdateRequest changes a payment link. Nil fields are left as is.
type PaymentLinkUpdateRequest struct {
	Name                *string   `json:"name,omitempty"`
	Description         *string   `json:"description,omitempty"`
	EndDate             *string   `json:"endDate,omitempty"`
	Value               *float64  `json:"value,omitempty"`
	Active              *bool     `json:"active,omitempty"`
	BillingType         *string   `json:"billingType,omitempty"`
	ChargeType          *string   `json:"chargeType,omitempty"`
	DueDateLimitDays    *int      `json:"dueDateLimitDays,omitempty"`
	SubscriptionCycle   *string   `json:"subscriptionCycle,omitempty"`
	MaxInstallmentCount *int      `json:"maxInstallmentCount,omitempty"`
	ExternalReference   *string   `json:"externalReference,omitempty"`
	NotificationEnabled *bool     `json:"notificationEnabled,omitempty"`
	Callback            *Callback `json:"callback,omitempty"`
}

// ListPaymentLinksParams filters PaymentLinkService.List.
type ListPaymentLinksParams struct {
	Pagination
	Active            *bool   `url:"active"`
	IncludeDeleted    *bool   `url:"includeDeleted"`
	Name              *string `url:"name"`
	ExternalReference *string `url:"externalReference"`
}

// PaymentLinkImage is an image shown on a payment link page.
type PaymentLinkImage struct {
	ID    string        `json:"id"`
	Main  bool          `json:"main"`
	Image *DocumentFile `json:"image"`

	Extra map[string]json.RawMessage `json:"-"`
}

type paymentLinkImageAlias PaymentLinkImage

func (i *PaymentLinkImage) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*paymentLinkImageAlias)(i), &i.Extra)
}

// PaymentLinkImageRequest uploads an image. Main is only sent when set.
type PaymentLinkImageRequest struct {
	Main  *bool
	Image File
}
