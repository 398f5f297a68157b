package asaas

import (
	"context"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// PaymentDocumentService manages files attached to charges.
type PaymentDocumentService struct{ service }

// List returns the documents of a charge.
func (s *PaymentDocumentService) List(ctx context.Context, paymentID string) (*ListResponse[PaymentDocument], error) {
	rb := s.request(http.MethodGet, "v3/payments/{id}/documents").PathParam("id", paymentID)
	return execute[ListResponse[PaymentDocument]](ctx, s.service, rb)
}

// Upload attaches a file to a charge.
func (s *PaymentDocumentService) Upload(ctx context.Context, paymentID string, req *PaymentDocumentUploadRequest) (*PaymentDocument, error) {
	if req == nil {
		req = &PaymentDocumentUploadRequest{}
	}
	form := api.NewMultipartForm().
		Field("availableAfterPayment", req.AvailableAfterPayment).
		Field("type", req.Type)
	name, content := req.File.part()
	form.File("file", name, content)

	rb := s.request(http.MethodPost, "v3/payments/{id}/documents").PathParam("id", paymentID).Multipart(form)
	return execute[PaymentDocument](ctx, s.service, rb)
}

// Get retrieves one document of a charge.
func (s *PaymentDocumentService) Get(ctx context.Context, paymentID, documentID string) (*PaymentDocument, error) {
	rb := s.request(http.MethodGet, "v3/payments/{id}/documents/{documentId}").
		PathParam("id", paymentID).
		PathParam("documentId", documentID)
	return execute[PaymentDocument](ctx, s.service, rb)
}

// Update changes the settings of a document.
func (s *PaymentDocumentService) Update(ctx context.Context, paymentID, documentID string, req *PaymentDocumentUpdateRequest) (*PaymentDocument, error) {
	rb := s.request(http.MethodPut, "v3/payments/{id}/documents/{documentId}").
		PathParam("id", paymentID).
		PathParam("documentId", documentID).
		JSON(req)
	return execute[PaymentDocument](ctx, s.service, rb)
}

// Delete removes a document from a charge.
func (s *PaymentDocumentService) Delete(ctx context.Context, paymentID, documentID string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/payments/{id}/documents/{documentId}").
		PathParam("id", paymentID).
		PathParam("documentId", documentID)
	return execute[DeleteResponse](ctx, s.service, rb)
}
