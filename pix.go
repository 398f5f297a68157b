package asaas

import (
	"context"
	"net/http"
)

// PixService manages Pix keys and static QR codes.
type PixService struct{ service }

// ListKeys returns the Pix keys of the account.
func (s *PixService) ListKeys(ctx context.Context, params *ListPixKeysParams) (*ListResponse[PixKey], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/pix/addressKeys"), params)
	return execute[ListResponse[PixKey]](ctx, s.service, rb)
}

// CreateKey creates a Pix key.
func (s *PixService) CreateKey(ctx context.Context, req *PixKeyCreateRequest) (*PixKey, error) {
	rb := s.request(http.MethodPost, "v3/pix/addressKeys").JSON(req)
	return execute[PixKey](ctx, s.service, rb)
}

// GetKey retrieves a Pix key.
func (s *PixService) GetKey(ctx context.Context, id string) (*PixKey, error) {
	rb := s.request(http.MethodGet, "v3/pix/addressKeys/{id}").PathParam("id", id)
	return execute[PixKey](ctx, s.service, rb)
}

// DeleteKey removes a Pix key and returns it with its new status.
func (s *PixService) DeleteKey(ctx context.Context, id string) (*PixKey, error) {
	rb := s.request(http.MethodDelete, "v3/pix/addressKeys/{id}").PathParam("id", id)
	return execute[PixKey](ctx, s.service, rb)
}

// CreateStaticQrCode creates a static QR code.
func (s *PixService) CreateStaticQrCode(ctx context.Context, req *StaticQrCodeRequest) (*StaticQrCode, error) {
	rb := s.request(http.MethodPost, "v3/pix/qrCodes/static").JSON(req)
	return execute[StaticQrCode](ctx, s.service, rb)
}

// DeleteStaticQrCode removes a static QR code.
func (s *PixService) DeleteStaticQrCode(ctx context.Context, id string) (*StaticQrCodeDeleteResponse, error) {
	rb := s.request(http.MethodDelete, "v3/pix/qrCodes/static/{id}").PathParam("id", id)
	return execute[StaticQrCodeDeleteResponse](ctx, s.service, rb)
}

// TokenBucket checks the remaining Pix key lookups.
func (s *PixService) TokenBucket(ctx context.Context) (*PixTokenBucket, error) {
	rb := s.request(http.MethodGet, "v3/pix/tokenBucket/addressKey")
	return execute[PixTokenBucket](ctx, s.service, rb)
}

// PixTransactionService pays QR codes and reads Pix transactions.
type PixTransactionService struct{ service }

// PayQrCode pays a Pix QR code.
func (s *PixTransactionService) PayQrCode(ctx context.Context, req *PixPayQrCodeRequest) (*PixTransaction, error) {
	rb := s.request(http.MethodPost, "v3/pix/qrCodes/pay").JSON(req)
	return execute[PixTransaction](ctx, s.service, rb)
}

// DecodeQrCode decodes a QR code payload before paying it.
func (s *PixTransactionService) DecodeQrCode(ctx context.Context, req *PixDecodeQrCodeRequest) (*DecodedPixQrCode, error) {
	rb := s.request(http.MethodPost, "v3/pix/qrCodes/decode").JSON(req)
	return execute[DecodedPixQrCode](ctx, s.service, rb)
}

// Get retrieves a Pix transaction.
func (s *PixTransactionService) Get(ctx context.Context, id string) (*PixTransaction, error) {
	rb := s.request(http.MethodGet, "v3/pix/transactions/{id}").PathParam("id", id)
	return execute[PixTransaction](ctx, s.service, rb)
}

// List returns Pix transactions matching params.
func (s *PixTransactionService) List(ctx context.Context, params *ListPixTransactionsParams) (*ListResponse[PixTransaction], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/pix/transactions"), params)
	return execute[ListResponse[PixTransaction]](ctx, s.service, rb)
}

// Cancel cancels a scheduled Pix transaction.
func (s *PixTransactionService) Cancel(ctx context.Context, id string) (*PixTransaction, error) {
	rb := s.request(http.MethodPost, "v3/pix/transactions/{id}/cancel").PathParam("id", id)
	return execute[PixTransaction](ctx, s.service, rb)
}

// RecurringPixService manages Pix recurrences under
// v3/pix/transactions/recurrings.
type RecurringPixService struct{ service }

// List returns recurrences matching params.
func (s *RecurringPixService) List(ctx context.Context, params *ListRecurringPixParams) (*ListResponse[RecurringPix], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/pix/transactions/recurrings"), params)
	return execute[ListResponse[RecurringPix]](ctx, s.service, rb)
}

// Get retrieves a recurrence.
func (s *RecurringPixService) Get(ctx context.Context, id string) (*RecurringPix, error) {
	rb := s.request(http.MethodGet, "v3/pix/transactions/recurrings/{id}").PathParam("id", id)
	return execute[RecurringPix](ctx, s.service, rb)
}

// Cancel cancels a recurrence.
func (s *RecurringPixService) Cancel(ctx context.Context, id string) (*RecurringPix, error) {
	rb := s.request(http.MethodPost, "v3/pix/transactions/recurrings/{id}/cancel").PathParam("id", id)
	return execute[RecurringPix](ctx, s.service, rb)
}

// ListItems returns the scheduled transactions of a recurrence.
func (s *RecurringPixService) ListItems(ctx context.Context, id string, params *Pagination) (*ListResponse[RecurringPixItem], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/pix/transactions/recurrings/{id}/items").PathParam("id", id), params)
	return execute[ListResponse[RecurringPixItem]](ctx, s.service, rb)
}

// CancelItem cancels one scheduled transaction of a recurrence.
func (s *RecurringPixService) CancelItem(ctx context.Context, itemID string) (*RecurringPixItem, error) {
	rb := s.request(http.MethodPost, "v3/pix/transactions/recurrings/items/{id}/cancel").PathParam("id", itemID)
	return execute[RecurringPixItem](ctx, s.service, rb)
}
