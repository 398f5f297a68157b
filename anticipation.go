package asaas

import (
	"context"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// AnticipationService manages advances under v3/anticipations.
type AnticipationService struct{ service }

// Get retrieves an anticipation.
func (s *AnticipationService) Get(ctx context.Context, id string) (*Anticipation, error) {
	rb := s.request(http.MethodGet, "v3/anticipations/{id}").PathParam("id", id)
	return execute[Anticipation](ctx, s.service, rb)
}

// List returns anticipations matching params.
func (s *AnticipationService) List(ctx context.Context, params *ListAnticipationsParams) (*ListResponse[Anticipation], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/anticipations"), params)
	return execute[ListResponse[Anticipation]](ctx, s.service, rb)
}

// Create requests an anticipation, optionally with supporting documents.
func (s *AnticipationService) Create(ctx context.Context, req *AnticipationCreateRequest) (*Anticipation, error) {
	if req == nil {
		req = &AnticipationCreateRequest{}
	}
	form := api.NewMultipartForm().
		Field("installment", req.Installment).
		Field("payment", req.Payment)
	name, content := req.Documents.part()
	form.File("documents", name, content)

	rb := s.request(http.MethodPost, "v3/anticipations").Multipart(form)
	return execute[Anticipation](ctx, s.service, rb)
}

// Simulate simulates an anticipation without requesting it.
func (s *AnticipationService) Simulate(ctx context.Context, req *AnticipationSimulateRequest) (*AnticipationSimulation, error) {
	rb := s.request(http.MethodPost, "v3/anticipations/simulate").JSON(req)
	return execute[AnticipationSimulation](ctx, s.service, rb)
}

// GetConfiguration returns the automatic anticipation setting.
func (s *AnticipationService) GetConfiguration(ctx context.Context) (*AnticipationConfiguration, error) {
	rb := s.request(http.MethodGet, "v3/anticipations/configurations")
	return execute[AnticipationConfiguration](ctx, s.service, rb)
}

// UpdateConfiguration changes the automatic anticipation setting.
func (s *AnticipationService) UpdateConfiguration(ctx context.Context, req *AnticipationConfigurationRequest) (*AnticipationConfiguration, error) {
	rb := s.request(http.MethodPut, "v3/anticipations/configurations").JSON(req)
	return execute[AnticipationConfiguration](ctx, s.service, rb)
}

// Limits returns the anticipation limits of the account.
func (s *AnticipationService) Limits(ctx context.Context) (*AnticipationLimits, error) {
	rb := s.request(http.MethodGet, "v3/anticipations/limits")
	return execute[AnticipationLimits](ctx, s.service, rb)
}

// Cancel cancels a pending anticipation.
func (s *AnticipationService) Cancel(ctx context.Context, id string) (*Anticipation, error) {
	rb := s.request(http.MethodPost, "v3/anticipations/{id}/cancel").PathParam("id", id)
	return execute[Anticipation](ctx, s.service, rb)
}
