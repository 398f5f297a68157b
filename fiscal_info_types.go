package asaas

import "encoding/json"

// FiscalInfo is the invoicing configuration of the account.
type FiscalInfo struct {
	ID                       string  `json:"id"`
	Email                    string  `json:"email"`
	MunicipalInscription     string  `json:"municipalInscription"`
	StateInscription         string  `json:"stateInscription"`
	SimplesNacional          bool    `json:"simplesNacional"`
	CulturalProjectsPromoter bool    `json:"culturalProjectsPromoter"`
	Cnae                     string  `json:"cnae"`
	SpecialTaxRegime         string  `json:"specialTaxRegime"`
	ServiceListItem          string  `json:"serviceListItem"`
	NbsCode                  string  `json:"nbsCode"`
	RpsSerie                 string  `json:"rpsSerie"`
	RpsNumber                int     `json:"rpsNumber"`
	LoteNumber               int     `json:"loteNumber"`
	Username                 string  `json:"username"`
	PasswordSent             bool    `json:"passwordSent"`
	AccessTokenSent          bool    `json:"accessTokenSent"`
	CertificateSent          bool    `json:"certificateSent"`
	Deductions               float64 `json:"deductions"`

	Extra map[string]json.RawMessage `json:"-"`
}

type fiscalInfoAlias FiscalInfo

func (f *FiscalInfo) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*fiscalInfoAlias)(f), &f.Extra)
}

// FiscalInfoSaveRequest creates or updates the invoicing configuration. It
// is sent as multipart form data; nil fields are omitted.
type FiscalInfoSaveRequest struct {
	Email                    *string
	MunicipalInscription     *string
	SimplesNacional          *bool
	CulturalProjectsPromoter *bool
	Cnae                     *string
	SpecialTaxRegime         *string
	ServiceListItem          *string
	NbsCode                  *string
	RpsSerie                 *string
	RpsNumber                *int
	LoteNumber               *int
	Username                 *string
	Password                 *string
	AccessToken              *string
	CertificatePassword      *string
	File                     *File
}

// MunicipalOptions describes what the account's city requires to issue
// invoices.
type MunicipalOptions struct {
	AuthenticationType       string            `json:"authenticationType"`
	SupportsCancellation     bool              `json:"supportsCancellation"`
	UsesSpecialTaxRegimes    bool              `json:"usesSpecialTaxRegimes"`
	UsesServiceListItem      bool              `json:"usesServiceListItem"`
	SpecialTaxRegimesList    []json.RawMessage `json:"specialTaxRegimesList"`
	MunicipalInscriptionHelp string            `json:"municipalInscriptionHelp"`
	SpecialTaxRegimeHelp     string            `json:"specialTaxRegimeHelp"`
	ServiceListItemHelp      string            `json:"serviceListItemHelp"`
	DigitalCertificatedHelp  string            `json:"digitalCertificatedHelp"`
	AccessTokenHelp          string            `json:"accessTokenHelp"`
	MunicipalServiceCodeHelp string            `json:"municipalServiceCodeHelp"`
	Options                  []json.RawMessage `json:"options"`

	Extra map[string]json.RawMessage `json:"-"`
}

type municipalOptionsAlias MunicipalOptions

func (o *MunicipalOptions) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*municipalOptionsAlias)(o), &o.Extra)
}

// MunicipalService is a service code accepted by the account's city.
type MunicipalService struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	IssTax      float64 `json:"issTax"`

	Extra map[string]json.RawMessage `json:"-"`
}

type municipalServiceAlias MunicipalService

func (m *MunicipalService) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*municipalServiceAlias)(m), &m.Extra)
}

// NbsCode is an entry of the national services classification.
type NbsCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`

	Extra map[string]json.RawMessage `json:"-"`
}

type nbsCodeAlias NbsCode

func (c *NbsCode) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*nbsCodeAlias)(c), &c.Extra)
}

// ListMunicipalServicesParams filters FiscalInfoService.ListServices.
type ListMunicipalServicesParams struct {
	Pagination
	Description *string `url:"description"`
}

// ListNbsCodesParams filters FiscalInfoService.ListNBSCodes.
type ListNbsCodesParams struct {
	Pagination
	CodeDescription *string `url:"codeDescription"`
}

// NationalPortalSetting toggles invoice issuing through the national portal.
type NationalPortalSetting struct {
	UseNationalPortal bool `json:"useNationalPortal"`

	Extra map[string]json.RawMessage `json:"-"`
}

type nationalPortalSettingAlias NationalPortalSetting

func (n *NationalPortalSetting) UnmarshalJSON(data []byte) error {
	return unmarshalWithExtras(data, (*nationalPortalSettingAlias)(n), &n.Extra)
}
