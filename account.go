package asaas

import (
	"context"
	"net/http"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// AccountInfoService reads and changes the commercial data of the account.
type AccountInfoService struct{ service }

// Get returns the commercial data.
func (s *AccountInfoService) Get(ctx context.Context) (*AccountInfo, error) {
	rb := s.request(http.MethodGet, "v3/myAccount/commercialInfo/")
	return execute[AccountInfo](ctx, s.service, rb)
}

// Update changes the commercial data.
func (s *AccountInfoService) Update(ctx context.Context, req *AccountInfoUpdateRequest) (*AccountInfo, error) {
	rb := s.request(http.MethodPost, "v3/myAccount/commercialInfo/").JSON(req)
	return execute[AccountInfo](ctx, s.service, rb)
}

// AccountDocumentService manages the documents sent for account approval.
type AccountDocumentService struct{ service }

// ListPending returns the documents the account still has to send.
func (s *AccountDocumentService) ListPending(ctx context.Context) (*PendingDocuments, error) {
	rb := s.request(http.MethodGet, "v3/myAccount/documents")
	return execute[PendingDocuments](ctx, s.service, rb)
}

// Send uploads a document for the pending document group id.
func (s *AccountDocumentService) Send(ctx context.Context, id string, req *AccountDocumentRequest) (*AccountDocument, error) {
	rb := s.request(http.MethodPost, "v3/myAccount/documents/{id}").
		PathParam("id", id).
		Multipart(accountDocumentForm(req, true))
	return execute[AccountDocument](ctx, s.service, rb)
}

// Get retrieves a sent document.
func (s *AccountDocumentService) Get(ctx context.Context, id string) (*AccountDocument, error) {
	rb := s.request(http.MethodGet, "v3/myAccount/documents/files/{id}").PathParam("id", id)
	return execute[AccountDocument](ctx, s.service, rb)
}

// Update replaces the file of a sent document.
func (s *AccountDocumentService) Update(ctx context.Context, id string, req *AccountDocumentRequest) (*AccountDocument, error) {
	rb := s.request(http.MethodPost, "v3/myAccount/documents/files/{id}").
		PathParam("id", id).
		Multipart(accountDocumentForm(req, false))
	return execute[AccountDocument](ctx, s.service, rb)
}

// Delete removes a sent document.
func (s *AccountDocumentService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/myAccount/documents/files/{id}").PathParam("id", id)
	return execute[DeleteResponse](ctx, s.service, rb)
}

func accountDocumentForm(req *AccountDocumentRequest, withType bool) *api.MultipartForm {
	form := api.NewMultipartForm()
	if req == nil {
		return form
	}
	name, content := req.DocumentFile.part()
	form.File("documentFile", name, content)
	if withType {
		form.Field("type", req.Type)
	}
	return form
}

// SubaccountService manages child accounts under v3/accounts.
type SubaccountService struct{ service }

// List returns child accounts matching params.
func (s *SubaccountService) List(ctx context.Context, params *ListSubaccountsParams) (*ListResponse[Subaccount], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/accounts"), params)
	return execute[ListResponse[Subaccount]](ctx, s.service, rb)
}

// Create creates a child account. The response carries its API key.
func (s *SubaccountService) Create(ctx context.Context, req *SubaccountCreateRequest) (*Subaccount, error) {
	rb := s.request(http.MethodPost, "v3/accounts").JSON(req)
	return execute[Subaccount](ctx, s.service, rb)
}

// Get retrieves a child account.
func (s *SubaccountService) Get(ctx context.Context, id string) (*Subaccount, error) {
	rb := s.request(http.MethodGet, "v3/accounts/{id}").PathParam("id", id)
	return execute[Subaccount](ctx, s.service, rb)
}

// NotificationService changes customer notification settings.
type NotificationService struct{ service }

// Update changes one notification.
func (s *NotificationService) Update(ctx context.Context, id string, req *NotificationUpdateRequest) (*Notification, error) {
	rb := s.request(http.MethodPut, "v3/notifications/{id}").PathParam("id", id).JSON(req)
	return execute[Notification](ctx, s.service, rb)
}

// UpdateBatch changes several notifications of one customer.
func (s *NotificationService) UpdateBatch(ctx context.Context, req *NotificationBatchRequest) (*NotificationBatchResponse, error) {
	rb := s.request(http.MethodPut, "v3/notifications/batch").JSON(req)
	return execute[NotificationBatchResponse](ctx, s.service, rb)
}
