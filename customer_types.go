package asaas

import "encoding/json"

// Customer is a payer registered in the account.
type Customer struct {
	Object               string `json:"object"`
	ID                   string `json:"id"`
	DateCreated          string `json:"dateCreated"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	MobilePhone          string `json:"mobilePhone"`
	Address              string `json:"address"`
	AddressNumber        string `json:"addressNumber"`
	Complement           string `json:"complement"`
	Province             string `json:"province"`
	City                 int    `json:"city"`
	CityName             string `json:"cityName"`
	State                string `json:"state"`
	PostalCode           string `json:"postalCode"`
	CpfCnpj              string `json:"cpfCnpj"`
	PersonType           string `json:"personType"`
	ExternalReference    string `json:"externalReference"`
	NotificationDisabled bool   `json:"notificationDisabled"`
	AdditionalEmails     string `json:"additionalEmails"`
	Deleted              bool   `json:"deleted"`

	Extra map[string]json.RawMessage `json:"-"`
}

type customerAlias Customer

func (c *Customer) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*customerAlias)(c), &c.Extra)
}

// CustomerCreateRequest registers a customer.
type CustomerCreateRequest struct {
	Name    string `json:"name"`
	CpfCnpj string `json:"cpfCnpj"`

	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	MobilePhone          *string `json:"mobilePhone,omitempty"`
	Address              *string `json:"address,omitempty"`
	AddressNumber        *string `json:"addressNumber,omitempty"`
	Complement           *string `json:"complement,omitempty"`
	Province             *string `json:"province,omitempty"`
	PostalCode           *string `json:"postalCode,omitempty"`
	ExternalReference    *string `json:"externalReference,omitempty"`
	NotificationDisabled *bool   `json:"notificationDisabled,omitempty"`
	AdditionalEmails     *string `json:"additionalEmails,omitempty"`
	GroupName            *string `json:"groupName,omitempty"`
	Company              *string `json:"company,omitempty"`
}

// CustomerUpdateRequest changes a customer. Nil fields are left as they are.
type CustomerUpdateRequest struct {
	Name                 *string `json:"name,omitempty"`
	CpfCnpj              *string `json:"cpfCnpj,omitempty"`
	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	MobilePhone          *string `json:"mobilePhone,omitempty"`
	Address              *string `json:"address,omitempty"`
	AddressNumber        *string `json:"addressNumber,omitempty"`
	Complement           *string `json:"complement,omitempty"`
	Province             *string `json:"province,omitempty"`
	PostalCode           *string `json:"postalCode,omitempty"`
	ExternalReference    *string `json:"externalReference,omitempty"`
	NotificationDisabled *bool   `json:"notificationDisabled,omitempty"`
	AdditionalEmails     *string `json:"additionalEmails,omitempty"`
}

// ListCustomersParams filters Customers.List.
type ListCustomersParams struct {
	Pagination
	Name              *string `url:"name"`
	Email             *string `url:"email"`
	CpfCnpj           *string `url:"cpfCnpj"`
	GroupName         *string `url:"groupName"`
	ExternalReference *string `url:"externalReference"`
}
