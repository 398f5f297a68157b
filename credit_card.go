package asaas

import (
	"context"
	"encoding/json"
	"net/http"
)

// CreditCardData holds raw card details sent for tokenization.
type CreditCardData struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	Ccv         string `json:"ccv"`
}

// CreditCardHolderInfo identifies the card holder.
type CreditCardHolderInfo struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	CpfCnpj           string  `json:"cpfCnpj"`
	PostalCode        string  `json:"postalCode"`
	AddressNumber     string  `json:"addressNumber"`
	AddressComplement *string `json:"addressComplement,omitempty"`
	Phone             string  `json:"phone"`
	MobilePhone       *string `json:"mobilePhone,omitempty"`
}

// CreditCardTokenizeRequest tokenizes a card for a customer.
type CreditCardTokenizeRequest struct {
	Customer             string               `json:"customer"`
	CreditCard           CreditCardData       `json:"creditCard"`
	CreditCardHolderInfo CreditCardHolderInfo `json:"creditCardHolderInfo"`
	RemoteIP             string               `json:"remoteIp"`
}

// CreditCardToken is a stored card reference usable in later charges.
type CreditCardToken struct {
	CreditCardNumber string `json:"creditCardNumber"`
	CreditCardBrand  string `json:"creditCardBrand"`
	CreditCardToken  string `json:"creditCardToken"`

	Extra map[string]json.RawMessage `json:"-"`
}

type creditCardTokenAlias CreditCardToken

func (t *CreditCardToken) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*creditCardTokenAlias)(t), &t.Extra)
}

// CreditCardService tokenizes cards.
type CreditCardService struct{ service }

// Tokenize exchanges card details for a token.
func (s *CreditCardService) Tokenize(ctx context.Context, req *CreditCardTokenizeRequest) (*CreditCardToken, error) {
	rb := s.request(http.MethodPost, "v3/creditCard/tokenizeCreditCard").JSON(req)
	return execute[CreditCardToken](ctx, s.service, rb)
}
