package asaas

import (
	"context"
	"encoding/json"
	"net/http"
)

// MobilePhoneRecharge is a prepaid phone top-up.
type MobilePhoneRecharge struct {
	ID             string  `json:"id"`
	Phone          string  `json:"phone"`
	Value          float64 `json:"value"`
	Status         string  `json:"status"`
	OperatorName   string  `json:"operatorName"`
	CanBeCancelled bool    `json:"canBeCancelled"`

	Extra map[string]json.RawMessage `json:"-"`
}

type mobilePhoneRechargeAlias MobilePhoneRecharge

func (r *MobilePhoneRecharge) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*mobilePhoneRechargeAlias)(r), &r.Extra)
}

// MobilePhoneRechargeCreateRequest tops up a phone.
type MobilePhoneRechargeCreateRequest struct {
	Phone string  `json:"phone"`
	Value float64 `json:"value"`
}

// PhoneProvider is the carrier serving a phone number.
type PhoneProvider struct {
	Provider string `json:"provider"`

	Extra map[string]json.RawMessage `json:"-"`
}

type phoneProviderAlias PhoneProvider

func (p *PhoneProvider) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*phoneProviderAlias)(p), &p.Extra)
}

// MobilePhoneRechargeService manages top-ups under v3/mobilePhoneRecharges.
type MobilePhoneRechargeService struct{ service }

// List returns top-ups.
func (s *MobilePhoneRechargeService) List(ctx context.Context, page *Pagination) (*ListResponse[MobilePhoneRecharge], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/mobilePhoneRecharges"), page)
	return execute[ListResponse[MobilePhoneRecharge]](ctx, s.service, rb)
}

// Create requests a top-up.
func (s *MobilePhoneRechargeService) Create(ctx context.Context, req *MobilePhoneRechargeCreateRequest) (*MobilePhoneRecharge, error) {
	rb := s.request(http.MethodPost, "v3/mobilePhoneRecharges").JSON(req)
	return execute[MobilePhoneRecharge](ctx, s.service, rb)
}

// Get retrieves a top-up.
func (s *MobilePhoneRechargeService) Get(ctx context.Context, id string) (*MobilePhoneRecharge, error) {
	rb := s.request(http.MethodGet, "v3/mobilePhoneRecharges/{id}").PathParam("id", id)
	return execute[MobilePhoneRecharge](ctx, s.service, rb)
}

// Cancel cancels a pending top-up.
func (s *MobilePhoneRechargeService) Cancel(ctx context.Context, id string) (*MobilePhoneRecharge, error) {
	rb := s.request(http.MethodPost, "v3/mobilePhoneRecharges/{id}/cancel").PathParam("id", id)
	return execute[MobilePhoneRecharge](ctx, s.service, rb)
}

// FindProvider looks up the carrier of a phone number.
func (s *MobilePhoneRechargeService) FindProvider(ctx context.Context, phoneNumber string) (*PhoneProvider, error) {
	rb := s.request(http.MethodGet, "v3/mobilePhoneRecharges/{phoneNumber}/provider").PathParam("phoneNumber", phoneNumber)
	return execute[PhoneProvider](ctx, s.service, rb)
}
