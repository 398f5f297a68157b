package asaas

import (
	"context"
	"encoding/json"
	"net/http"
)

// CheckoutItem is a line item shown on a checkout page.
type CheckoutItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Value       float64 `json:"value"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

// CheckoutCallback holds the redirect targets of a checkout.
type CheckoutCallback struct {
	SuccessURL string  `json:"successUrl"`
	CancelURL  string  `json:"cancelUrl"`
	ExpiredURL *string `json:"expiredUrl,omitempty"`
}

// CheckoutCustomerData prefills the payer form.
type CheckoutCustomerData struct {
	Name          *string `json:"name,omitempty"`
	CpfCnpj       *string `json:"cpfCnpj,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	AddressNumber *string `json:"addressNumber,omitempty"`
	Complement    *string `json:"complement,omitempty"`
	PostalCode    *string `json:"postalCode,omitempty"`
	Province      *string `json:"province,omitempty"`
	City          *int    `json:"city,omitempty"`
}

// CheckoutSubscription configures a recurrent checkout.
type CheckoutSubscription struct {
	Cycle       string  `json:"cycle"`
	NextDueDate string  `json:"nextDueDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

// CheckoutInstallment configures an installment checkout.
type CheckoutInstallment struct {
	MaxInstallmentCount int `json:"maxInstallmentCount"`
}

// CheckoutCreateRequest opens a checkout session.
type CheckoutCreateRequest struct {
	BillingTypes    []string              `json:"billingTypes"`
	ChargeTypes     []string              `json:"chargeTypes"`
	Items           []CheckoutItem        `json:"items"`
	Callback        *CheckoutCallback     `json:"callback,omitempty"`
	MinutesToExpire *int                  `json:"minutesToExpire,omitempty"`
	CustomerData    *CheckoutCustomerData `json:"customerData,omitempty"`
	Subscription    *CheckoutSubscription `json:"subscription,omitempty"`
	Installment     *CheckoutInstallment  `json:"installment,omitempty"`
	Splits          []Split               `json:"splits,omitempty"`
}

// Checkout is a hosted checkout session.
type Checkout struct {
	ID              string          `json:"id"`
	URL             string          `json:"url"`
	BillingTypes    []string        `json:"billingTypes"`
	ChargeTypes     []string        `json:"chargeTypes"`
	MinutesToExpire int             `json:"minutesToExpire"`
	Callback        json.RawMessage `json:"callback"`
	Items           []CheckoutItem  `json:"items"`
	CustomerData    json.RawMessage `json:"customerData"`
	Subscription    json.RawMessage `json:"subscription"`
	Installment     json.RawMessage `json:"installment"`
	Split           []Split         `json:"split"`

	Extra map[string]json.RawMessage `json:"-"`
}

type checkoutAlias Checkout

func (c *Checkout) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*checkoutAlias)(c), &c.Extra)
}

// CheckoutService manages hosted checkout sessions.
type CheckoutService struct{ service }

// Create opens a checkout session.
func (s *CheckoutService) Create(ctx context.Context, req *CheckoutCreateRequest) (*Checkout, error) {
	rb := s.request(http.MethodPost, "v3/checkouts").JSON(req)
	return execute[Checkout](ctx, s.service, rb)
}

// Cancel closes a checkout session.
func (s *CheckoutService) Cancel(ctx context.Context, id string) (*Checkout, error) {
	rb := s.request(http.MethodPost, "v3/checkouts/{id}/cancel").PathParam("id", id)
	return execute[Checkout](ctx, s.service, rb)
}
