package asaas

import (
	"context"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// FiscalInfoService manages invoicing configuration under v3/fiscalInfo.
type FiscalInfoService struct{ service }

// MunicipalOptions returns the invoicing requirements of the account's city.
func (s *FiscalInfoService) MunicipalOptions(ctx context.Context) (*MunicipalOptions, error) {
	rb := s.request(http.MethodGet, "v3/fiscalInfo/municipalOptions")
	return execute[MunicipalOptions](ctx, s.service, rb)
}

// Get returns the invoicing configuration.
func (s *FiscalInfoService) Get(ctx context.Context) (*FiscalInfo, error) {
	rb := s.request(http.MethodGet, "v3/fiscalInfo/")
	return execute[FiscalInfo](ctx, s.service, rb)
}

// Save creates or updates the invoicing configuration.
func (s *FiscalInfoService) Save(ctx context.Context, req *FiscalInfoSaveRequest) (*FiscalInfo, error) {
	if req == nil {
		req = &FiscalInfoSaveRequest{}
	}
	form := api.NewMultipartForm().
		Field("email", req.Email).
		Field("municipalInscription", req.MunicipalInscription).
		Field("simplesNacional", req.SimplesNacional).
		Field("culturalProjectsPromoter", req.CulturalProjectsPromoter).
		Field("cnae", req.Cnae).
		Field("specialTaxRegime", req.SpecialTaxRegime).
		Field("serviceListItem", req.ServiceListItem).
		Field("nbsCode", req.NbsCode).
		Field("rpsSerie", req.RpsSerie).
		Field("rpsNumber", req.RpsNumber).
		Field("loteNumber", req.LoteNumber).
		Field("username", req.Username).
		Field("password", req.Password).
		Field("accessToken", req.AccessToken).
		Field("certificatePassword", req.CertificatePassword)
	name, content := req.File.part()
	form.File("file", name, content)

	rb := s.request(http.MethodPost, "v3/fiscalInfo/").Multipart(form)
	return execute[FiscalInfo](ctx, s.service, rb)
}

// ListServices returns the municipal service codes available to the account.
func (s *FiscalInfoService) ListServices(ctx context.Context, params *ListMunicipalServicesParams) (*ListResponse[MunicipalService], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/fiscalInfo/services"), params)
	return execute[ListResponse[MunicipalService]](ctx, s.service, rb)
}

// ListNBSCodes returns national services classification codes.
func (s *FiscalInfoService) ListNBSCodes(ctx context.Context, params *ListNbsCodesParams) (*ListResponse[NbsCode], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/fiscalInfo/nbsCodes"), params)
	return execute[ListResponse[NbsCode]](ctx, s.service, rb)
}

// UpdateUseNationalPortal switches invoice issuing to or from the national
// portal.
func (s *FiscalInfoService) UpdateUseNationalPortal(ctx context.Context, useNationalPortal bool) (*NationalPortalSetting, error) {
	body := struct {
		UseNationalPortal bool `json:"useNationalPortal"`
	}{useNationalPortal}
	rb := s.request(http.MethodPost, "v3/fiscalInfo/nationalPortal").JSON(body)
	return execute[NationalPortalSetting](ctx, s.service, rb)
}
