package asaas

import "encoding/json"

// Subscription cycles.
const (
	CycleWeekly       = "WEEKLY"
	CycleBiweekly     = "BIWEEKLY"
	CycleMonthly      = "MONTHLY"
	CycleBimonthly    = "BIMONTHLY"
	CycleQuarterly    = "QUARTERLY"
	CycleSemiannually = "SEMIANNUALLY"
	CycleYearly       = "YEARLY"
)

// Subscription is a recurring charge.
type Subscription struct {
	Object            string    `json:"object"`
	ID                string    `json:"id"`
	DateCreated       string    `json:"dateCreated"`
	Customer          string    `json:"customer"`
	PaymentLink       string    `json:"paymentLink"`
	BillingType       string    `json:"billingType"`
	Cycle             string    `json:"cycle"`
	Value             float64   `json:"value"`
	NextDueDate       string    `json:"nextDueDate"`
	EndDate           string    `json:"endDate"`
	Description       string    `json:"description"`
	Status            string    `json:"status"`
	ExternalReference string    `json:"externalReference"`
	MaxPayments       int       `json:"maxPayments"`
	Deleted           bool      `json:"deleted"`
	Discount          *Discount `json:"discount"`
	Fine              *Fine     `json:"fine"`
	Interest          *Interest `json:"interest"`
	Split             []Split   `json:"split"`

	Extra map[string]json.RawMessage `json:"-"`
}

type subscriptionAlias Subscription

func (s *Subscription) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*subscriptionAlias)(s), &s.Extra)
}

// SubscriptionCreateRequest creates a subscription.
type SubscriptionCreateRequest struct {
	Customer    string  `json:"customer"`
	BillingType string  `json:"billingType"`
	Value       float64 `json:"value"`
	NextDueDate string  `json:"nextDueDate"`
	Cycle       string  `json:"cycle"`

	Discount          *Discount `json:"discount,omitempty"`
	Interest          *Interest `json:"interest,omitempty"`
	Fine              *Fine     `json:"fine,omitempty"`
	Description       *string   `json:"description,omitempty"`
	EndDate           *string   `json:"endDate,omitempty"`
	MaxPayments       *int      `json:"maxPayments,omitempty"`
	ExternalReference *string   `json:"externalReference,omitempty"`
	Split             []Split   `json:"split,omitempty"`
	Callback          *Callback `json:"callback,omitempty"`
}

// SubscriptionUpdateRequest changes a subscription. Nil fields are left as
// they are.
type SubscriptionUpdateRequest struct {
	BillingType           *string   `json:"billingType,omitempty"`
	Status                *string   `json:"status,omitempty"`
	Value                 *float64  `json:"value,omitempty"`
	NextDueDate           *string   `json:"nextDueDate,omitempty"`
	Cycle                 *string   `json:"cycle,omitempty"`
	Description           *string   `json:"description,omitempty"`
	EndDate               *string   `json:"endDate,omitempty"`
	MaxPayments           *int      `json:"maxPayments,omitempty"`
	ExternalReference     *string   `json:"externalReference,omitempty"`
	Discount              *Discount `json:"discount,omitempty"`
	Interest              *Interest `json:"interest,omitempty"`
	Fine                  *Fine     `json:"fine,omitempty"`
	UpdatePendingPayments *bool     `json:"updatePendingPayments,omitempty"`
	Split                 []Split   `json:"split,omitempty"`
}

// ListSubscriptionsParams filters Subscriptions.List.
type ListSubscriptionsParams struct {
	Pagination
	Customer          *string `url:"customer"`
	CustomerGroupName *string `url:"customerGroupName"`
	BillingType       *string `url:"billingType"`
	Status            *string `url:"status"`
	DeletedOnly       *bool   `url:"deletedOnly"`
	IncludeDeleted    *bool   `url:"includeDeleted"`
	ExternalReference *string `url:"externalReference"`
	Order             *string `url:"order"`
	Sort              *string `url:"sort"`
}
