package asaas

import (
	"context"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// PaymentLinkService manages payment links under v3/paymentLinks.
type PaymentLinkService struct{ service }

// List returns payment links matching params.
func (s *PaymentLinkService) List(ctx context.Context, params *ListPaymentLinksParams) (*ListResponse[PaymentLink], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/paymentLinks"), params)
	return execute[ListResponse[PaymentLink]](ctx, s.service, rb)
}

// Create creates a payment link.
func (s *PaymentLinkService) Create(ctx context.Context, req *PaymentLinkCreateRequest) (*PaymentLink, error) {
	rb := s.request(http.MethodPost, "v3/paymentLinks").JSON(req)
	return execute[PaymentLink](ctx, s.service, rb)
}

// Get retrieves a payment link.
func (s *PaymentLinkService) Get(ctx context.Context, id string) (*PaymentLink, error) {
	rb := s.request(http.MethodGet, "v3/paymentLinks/{id}").PathParam("id", id)
	return execute[PaymentLink](ctx, s.service, rb)
}

// Update changes a payment link.
func (s *PaymentLinkService) Update(ctx context.Context, id string, req *PaymentLinkUpdateRequest) (*PaymentLink, error) {
	rb := s.request(http.MethodPut, "v3/paymentLinks/{id}").PathParam("id", id).JSON(req)
	return execute[PaymentLink](ctx, s.service, rb)
}

// Delete removes a payment link.
func (s *PaymentLinkService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/paymentLinks/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// Restore brings back a removed payment link.
func (s *PaymentLinkService) Restore(ctx context.Context, id string) (*PaymentLink, error) {
	rb := s.request(http.MethodPost, "v3/paymentLinks/{id}/restore").PathParam("id", id)
	return execute[PaymentLink](ctx, s.service, rb)
}

// ListImages returns the images of a payment link.
func (s *PaymentLinkService) ListImages(ctx context.Context, id string) (*ListResponse[PaymentLinkImage], error) {
	rb := s.request(http.MethodGet, "v3/paymentLinks/{id}/images").PathParam("id", id)
	return execute[ListResponse[PaymentLinkImage]](ctx, s.service, rb)
}

// AddImage uploads an image to a payment link.
func (s *PaymentLinkService) AddImage(ctx context.Context, id string, req *PaymentLinkImageRequest) (*PaymentLinkImage, error) {
	if req == nil {
		req = &PaymentLinkImageRequest{}
	}
	form := api.NewMultipartForm().
		Field("main", req.Main).
		File("image", req.Image.Name, req.Image.Content)

	rb := s.request(http.MethodPost, "v3/paymentLinks/{id}/images").PathParam("id", id).Multipart(form)
	return execute[PaymentLinkImage](ctx, s.service, rb)
}

// GetImage retrieves one image of a payment link.
func (s *PaymentLinkService) GetImage(ctx context.Context, paymentLinkID, imageID string) (*PaymentLinkImage, error) {
	rb := s.request(http.MethodGet, "v3/paymentLinks/{paymentLinkId}/images/{imageId}").
		PathParam("paymentLinkId", paymentLinkID).
		PathParam("imageId", imageID)
	return execute[PaymentLinkImage](ctx, s.service, rb)
}

// DeleteImage removes an image from a payment link.
func (s *PaymentLinkService) DeleteImage(ctx context.Context, paymentLinkID, imageID string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/paymentLinks/{paymentLinkId}/images/{imageId}").
		PathParam("paymentLinkId", paymentLinkID).
		PathParam("imageId", imageID)
	return execute[DeleteResponse](ctx, s.service, rb)
}

// SetMainImage makes an image the main one of its payment link.
func (s *PaymentLinkService) SetMainImage(ctx context.Context, paymentLinkID, imageID string) (*PaymentLinkImage, error) {
	rb := s.request(http.MethodPut, "v3/paymentLinks/{paymentLinkId}/images/{imageId}/setAsMain").
		PathParam("paymentLinkId", paymentLinkID).
		PathParam("imageId", imageID)
	return execute[PaymentLinkImage](ctx, s.service, rb)
}
