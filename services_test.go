package asaas

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	name   string
	call   func(ctx context.Context, c *Client) error
	method string
	path   string
	query  string
}

func ignore[T any](_ T, err error) error { return err }

func routeCases() []routeCase {
	page := &Pagination{Offset: Int(20), Limit: Int(10)}

	return []routeCase{
		// Payments
		{"Payments.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Payments.List(ctx, &ListPaymentsParams{
				Pagination:    Pagination{Limit: Int(10)},
				Status:        String("PENDING"),
				DateCreatedGe: String("2026-01-01"),
			}))
		}, http.MethodGet, "/v3/payments", "limit=10&status=PENDING&dateCreated[ge]=2026-01-01"},
		{"Payments.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Payments.Create(ctx, &PaymentCreateRequest{Customer: "cus_1"}))
		}, http.MethodPost, "/v3/payments", ""},
		{"Payments.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Payments.Get(ctx, "pay_1"))
		}, http.MethodGet, "/v3/payments/pay_1", ""},
		{"Payments.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.Payments.Update(ctx, "pay_1", &PaymentUpdateRequest{}))
		}, http.MethodPut, "/v3/payments/pay_1", ""},
		{"Payments.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.Payments.Delete(ctx, "pay_1"))
		}, http.MethodDelete, "/v3/payments/pay_1", ""},

		// LeanPayments
		{"LeanPayments.List", func(ctx context.Context, c *Client) error {
			return ignore(c.LeanPayments.List(ctx, nil))
		}, http.MethodGet, "/v3/lean/payments", ""},
		{"LeanPayments.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.LeanPayments.Create(ctx, &PaymentCreateRequest{}))
		}, http.MethodPost, "/v3/lean/payments", ""},
		{"LeanPayments.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.LeanPayments.Get(ctx, "pay_1"))
		}, http.MethodGet, "/v3/lean/payments/pay_1", ""},
		{"LeanPayments.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.LeanPayments.Update(ctx, "pay_1", &PaymentUpdateRequest{}))
		}, http.MethodPut, "/v3/lean/payments/pay_1", ""},
		{"LeanPayments.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.LeanPayments.Delete(ctx, "pay_1"))
		}, http.MethodDelete, "/v3/lean/payments/pay_1", ""},

		// PaymentRefunds
		{"PaymentRefunds.ListRefunds", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentRefunds.ListRefunds(ctx, "pay_1"))
		}, http.MethodGet, "/v3/payments/pay_1/refunds", ""},
		{"PaymentRefunds.RefundBankSlip", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentRefunds.RefundBankSlip(ctx, "pay_1", nil))
		}, http.MethodPost, "/v3/payments/pay_1/bankSlip/refund", ""},

		// PaymentDocuments
		{"PaymentDocuments.List", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDocuments.List(ctx, "pay_1"))
		}, http.MethodGet, "/v3/payments/pay_1/documents", ""},
		{"PaymentDocuments.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDocuments.Get(ctx, "pay_1", "doc_1"))
		}, http.MethodGet, "/v3/payments/pay_1/documents/doc_1", ""},
		{"PaymentDocuments.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDocuments.Update(ctx, "pay_1", "doc_1", &PaymentDocumentUpdateRequest{}))
		}, http.MethodPut, "/v3/payments/pay_1/documents/doc_1", ""},
		{"PaymentDocuments.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDocuments.Delete(ctx, "pay_1", "doc_1"))
		}, http.MethodDelete, "/v3/payments/pay_1/documents/doc_1", ""},

		// PaymentDunnings
		{"PaymentDunnings.List", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.List(ctx, &ListPaymentDunningsParams{Status: String("PENDING")}))
		}, http.MethodGet, "/v3/paymentDunnings", "status=PENDING"},
		{"PaymentDunnings.Simulate", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.Simulate(ctx, "pay_1", nil))
		}, http.MethodPost, "/v3/paymentDunnings/simulate", "payment=pay_1"},
		{"PaymentDunnings.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.Get(ctx, "dun_1"))
		}, http.MethodGet, "/v3/paymentDunnings/dun_1", ""},
		{"PaymentDunnings.ListHistory", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.ListHistory(ctx, "dun_1", page))
		}, http.MethodGet, "/v3/paymentDunnings/dun_1/history", "offset=20&limit=10"},
		{"PaymentDunnings.ListPartialPayments", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.ListPartialPayments(ctx, "dun_1", nil))
		}, http.MethodGet, "/v3/paymentDunnings/dun_1/partialPayments", ""},
		{"PaymentDunnings.ListAvailablePayments", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.ListAvailablePayments(ctx, page))
		}, http.MethodGet, "/v3/paymentDunnings/paymentsAvailableForDunning", "offset=20&limit=10"},
		{"PaymentDunnings.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentDunnings.Cancel(ctx, "dun_1"))
		}, http.MethodPost, "/v3/paymentDunnings/dun_1/cancel", ""},

		// PaymentLinks
		{"PaymentLinks.List", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.List(ctx, &ListPaymentLinksParams{Active: Bool(true)}))
		}, http.MethodGet, "/v3/paymentLinks", "active=true"},
		{"PaymentLinks.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.Create(ctx, &PaymentLinkCreateRequest{Name: "Plan"}))
		}, http.MethodPost, "/v3/paymentLinks", ""},
		{"PaymentLinks.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.Get(ctx, "lnk_1"))
		}, http.MethodGet, "/v3/paymentLinks/lnk_1", ""},
		{"PaymentLinks.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.Update(ctx, "lnk_1", &PaymentLinkUpdateRequest{}))
		}, http.MethodPut, "/v3/paymentLinks/lnk_1", ""},
		{"PaymentLinks.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.Delete(ctx, "lnk_1"))
		}, http.MethodDelete, "/v3/paymentLinks/lnk_1", ""},
		{"PaymentLinks.Restore", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.Restore(ctx, "lnk_1"))
		}, http.MethodPost, "/v3/paymentLinks/lnk_1/restore", ""},
		{"PaymentLinks.ListImages", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.ListImages(ctx, "lnk_1"))
		}, http.MethodGet, "/v3/paymentLinks/lnk_1/images", ""},
		{"PaymentLinks.GetImage", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.GetImage(ctx, "lnk_1", "img_1"))
		}, http.MethodGet, "/v3/paymentLinks/lnk_1/images/img_1", ""},
		{"PaymentLinks.DeleteImage", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.DeleteImage(ctx, "lnk_1", "img_1"))
		}, http.MethodDelete, "/v3/paymentLinks/lnk_1/images/img_1", ""},
		{"PaymentLinks.SetMainImage", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentLinks.SetMainImage(ctx, "lnk_1", "img_1"))
		}, http.MethodPut, "/v3/paymentLinks/lnk_1/images/img_1/setAsMain", ""},

		// PaymentSplits
		{"PaymentSplits.GetPaid", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentSplits.GetPaid(ctx, "spl_1"))
		}, http.MethodGet, "/v3/payments/splits/paid/spl_1", ""},
		{"PaymentSplits.ListPaid", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentSplits.ListPaid(ctx, nil))
		}, http.MethodGet, "/v3/payments/splits/paid", ""},
		{"PaymentSplits.GetReceived", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentSplits.GetReceived(ctx, "spl_1"))
		}, http.MethodGet, "/v3/payments/splits/received/spl_1", ""},
		{"PaymentSplits.ListReceived", func(ctx context.Context, c *Client) error {
			return ignore(c.PaymentSplits.ListReceived(ctx, nil))
		}, http.MethodGet, "/v3/payments/splits/received", ""},

		// Customers
		{"Customers.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Customers.List(ctx, &ListCustomersParams{Name: String("Marcelo Almeida")}))
		}, http.MethodGet, "/v3/customers", "name=Marcelo%20Almeida"},
		{"Customers.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Customers.Create(ctx, &CustomerCreateRequest{}))
		}, http.MethodPost, "/v3/customers", ""},
		{"Customers.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Customers.Get(ctx, "cus_1"))
		}, http.MethodGet, "/v3/customers/cus_1", ""},
		{"Customers.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.Customers.Update(ctx, "cus_1", &CustomerUpdateRequest{}))
		}, http.MethodPut, "/v3/customers/cus_1", ""},
		{"Customers.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.Customers.Delete(ctx, "cus_1"))
		}, http.MethodDelete, "/v3/customers/cus_1", ""},
		{"Customers.Restore", func(ctx context.Context, c *Client) error {
			return ignore(c.Customers.Restore(ctx, "cus_1"))
		}, http.MethodPost, "/v3/customers/cus_1/restore", ""},

		// Subscriptions
		{"Subscriptions.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Subscriptions.List(ctx, &ListSubscriptionsParams{IncludeDeleted: Bool(false)}))
		}, http.MethodGet, "/v3/subscriptions", "includeDeleted=false"},
		{"Subscriptions.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Subscriptions.Create(ctx, &SubscriptionCreateRequest{}))
		}, http.MethodPost, "/v3/subscriptions", ""},
		{"Subscriptions.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Subscriptions.Get(ctx, "sub_1"))
		}, http.MethodGet, "/v3/subscriptions/sub_1", ""},
		{"Subscriptions.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.Subscriptions.Update(ctx, "sub_1", &SubscriptionUpdateRequest{}))
		}, http.MethodPut, "/v3/subscriptions/sub_1", ""},
		{"Subscriptions.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.Subscriptions.Delete(ctx, "sub_1"))
		}, http.MethodDelete, "/v3/subscriptions/sub_1", ""},
		{"Subscriptions.ListPayments", func(ctx context.Context, c *Client) error {
			return ignore(c.Subscriptions.ListPayments(ctx, "sub_1", page))
		}, http.MethodGet, "/v3/subscriptions/sub_1/payments", "offset=20&limit=10"},

		// Installments
		{"Installments.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Installments.List(ctx, page))
		}, http.MethodGet, "/v3/installments", "offset=20&limit=10"},
		{"Installments.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Installments.Create(ctx, &InstallmentCreateRequest{}))
		}, http.MethodPost, "/v3/installments", ""},
		{"Installments.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Installments.Get(ctx, "ins_1"))
		}, http.MethodGet, "/v3/installments/ins_1", ""},
		{"Installments.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.Installments.Delete(ctx, "ins_1"))
		}, http.MethodDelete, "/v3/installments/ins_1", ""},
		{"Installments.ListPayments", func(ctx context.Context, c *Client) error {
			return ignore(c.Installments.ListPayments(ctx, "ins_1", &InstallmentPaymentsParams{Status: String("RECEIVED")}))
		}, http.MethodGet, "/v3/installments/ins_1/payments", "status=RECEIVED"},
		{"Installments.Refund", func(ctx context.Context, c *Client) error {
			return ignore(c.Installments.Refund(ctx, "ins_1"))
		}, http.MethodPost, "/v3/installments/ins_1/refund", ""},

		// Pix
		{"Pix.ListKeys", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.ListKeys(ctx, &ListPixKeysParams{Status: String("ACTIVE")}))
		}, http.MethodGet, "/v3/pix/addressKeys", "status=ACTIVE"},
		{"Pix.CreateKey", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.CreateKey(ctx, &PixKeyCreateRequest{Type: PixKeyTypeEVP}))
		}, http.MethodPost, "/v3/pix/addressKeys", ""},
		{"Pix.GetKey", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.GetKey(ctx, "key_1"))
		}, http.MethodGet, "/v3/pix/addressKeys/key_1", ""},
		{"Pix.DeleteKey", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.DeleteKey(ctx, "key_1"))
		}, http.MethodDelete, "/v3/pix/addressKeys/key_1", ""},
		{"Pix.CreateStaticQrCode", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.CreateStaticQrCode(ctx, &StaticQrCodeRequest{}))
		}, http.MethodPost, "/v3/pix/qrCodes/static", ""},
		{"Pix.DeleteStaticQrCode", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.DeleteStaticQrCode(ctx, "qr_1"))
		}, http.MethodDelete, "/v3/pix/qrCodes/static/qr_1", ""},
		{"Pix.TokenBucket", func(ctx context.Context, c *Client) error {
			return ignore(c.Pix.TokenBucket(ctx))
		}, http.MethodGet, "/v3/pix/tokenBucket/addressKey", ""},

		// PixTransactions
		{"PixTransactions.PayQrCode", func(ctx context.Context, c *Client) error {
			return ignore(c.PixTransactions.PayQrCode(ctx, &PixPayQrCodeRequest{}))
		}, http.MethodPost, "/v3/pix/qrCodes/pay", ""},
		{"PixTransactions.DecodeQrCode", func(ctx context.Context, c *Client) error {
			return ignore(c.PixTransactions.DecodeQrCode(ctx, &PixDecodeQrCodeRequest{}))
		}, http.MethodPost, "/v3/pix/qrCodes/decode", ""},
		{"PixTransactions.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.PixTransactions.Get(ctx, "pix_1"))
		}, http.MethodGet, "/v3/pix/transactions/pix_1", ""},
		{"PixTransactions.List", func(ctx context.Context, c *Client) error {
			return ignore(c.PixTransactions.List(ctx, nil))
		}, http.MethodGet, "/v3/pix/transactions", ""},
		{"PixTransactions.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.PixTransactions.Cancel(ctx, "pix_1"))
		}, http.MethodPost, "/v3/pix/transactions/pix_1/cancel", ""},

		// RecurringPix
		{"RecurringPix.List", func(ctx context.Context, c *Client) error {
			return ignore(c.RecurringPix.List(ctx, nil))
		}, http.MethodGet, "/v3/pix/transactions/recurrings", ""},
		{"RecurringPix.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.RecurringPix.Get(ctx, "rec_1"))
		}, http.MethodGet, "/v3/pix/transactions/recurrings/rec_1", ""},
		{"RecurringPix.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.RecurringPix.Cancel(ctx, "rec_1"))
		}, http.MethodPost, "/v3/pix/transactions/recurrings/rec_1/cancel", ""},
		{"RecurringPix.ListItems", func(ctx context.Context, c *Client) error {
			return ignore(c.RecurringPix.ListItems(ctx, "rec_1", nil))
		}, http.MethodGet, "/v3/pix/transactions/recurrings/rec_1/items", ""},
		{"RecurringPix.CancelItem", func(ctx context.Context, c *Client) error {
			return ignore(c.RecurringPix.CancelItem(ctx, "itm_1"))
		}, http.MethodPost, "/v3/pix/transactions/recurrings/items/itm_1/cancel", ""},

		// Transfers
		{"Transfers.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Transfers.List(ctx, &ListTransfersParams{DateCreatedGe: String("2026-01-01"), DateCreatedLe: String("2026-01-31")}))
		}, http.MethodGet, "/v3/transfers", "dateCreated[ge]=2026-01-01&dateCreated[le]=2026-01-31"},
		{"Transfers.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Transfers.Create(ctx, &TransferCreateRequest{}))
		}, http.MethodPost, "/v3/transfers", ""},
		{"Transfers.CreateInternal", func(ctx context.Context, c *Client) error {
			return ignore(c.Transfers.CreateInternal(ctx, &InternalTransferRequest{}))
		}, http.MethodPost, "/v3/transfers/internal", ""},
		{"Transfers.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Transfers.Get(ctx, "tra_1"))
		}, http.MethodGet, "/v3/transfers/tra_1", ""},
		{"Transfers.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.Transfers.Cancel(ctx, "tra_1"))
		}, http.MethodDelete, "/v3/transfers/tra_1/cancel", ""},

		// Anticipations
		{"Anticipations.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.Get(ctx, "ant_1"))
		}, http.MethodGet, "/v3/anticipations/ant_1", ""},
		{"Anticipations.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.List(ctx, nil))
		}, http.MethodGet, "/v3/anticipations", ""},
		{"Anticipations.Simulate", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.Simulate(ctx, &AnticipationSimulateRequest{Payment: String("pay_1")}))
		}, http.MethodPost, "/v3/anticipations/simulate", ""},
		{"Anticipations.GetConfiguration", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.GetConfiguration(ctx))
		}, http.MethodGet, "/v3/anticipations/configurations", ""},
		{"Anticipations.UpdateConfiguration", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.UpdateConfiguration(ctx, &AnticipationConfigurationRequest{}))
		}, http.MethodPut, "/v3/anticipations/configurations", ""},
		{"Anticipations.Limits", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.Limits(ctx))
		}, http.MethodGet, "/v3/anticipations/limits", ""},
		{"Anticipations.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.Anticipations.Cancel(ctx, "ant_1"))
		}, http.MethodPost, "/v3/anticipations/ant_1/cancel", ""},

		// Webhooks
		{"Webhooks.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Webhooks.List(ctx, nil))
		}, http.MethodGet, "/v3/webhooks", ""},
		{"Webhooks.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Webhooks.Create(ctx, &WebhookRequest{}))
		}, http.MethodPost, "/v3/webhooks", ""},
		{"Webhooks.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Webhooks.Get(ctx, "wh_1"))
		}, http.MethodGet, "/v3/webhooks/wh_1", ""},
		{"Webhooks.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.Webhooks.Update(ctx, "wh_1", &WebhookRequest{}))
		}, http.MethodPut, "/v3/webhooks/wh_1", ""},
		{"Webhooks.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.Webhooks.Delete(ctx, "wh_1"))
		}, http.MethodDelete, "/v3/webhooks/wh_1", ""},

		// Invoices
		{"Invoices.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Invoices.List(ctx, &ListInvoicesParams{EffectiveDateGe: String("2026-01-01"), Status: String("AUTHORIZED")}))
		}, http.MethodGet, "/v3/invoices", "effectiveDate[ge]=2026-01-01&status=AUTHORIZED"},
		{"Invoices.Schedule", func(ctx context.Context, c *Client) error {
			return ignore(c.Invoices.Schedule(ctx, &InvoiceScheduleRequest{}))
		}, http.MethodPost, "/v3/invoices", ""},
		{"Invoices.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Invoices.Get(ctx, "inv_1"))
		}, http.MethodGet, "/v3/invoices/inv_1", ""},
		{"Invoices.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.Invoices.Update(ctx, "inv_1", &InvoiceUpdateRequest{}))
		}, http.MethodPut, "/v3/invoices/inv_1", ""},
		{"Invoices.Authorize", func(ctx context.Context, c *Client) error {
			return ignore(c.Invoices.Authorize(ctx, "inv_1"))
		}, http.MethodPost, "/v3/invoices/inv_1/authorize", ""},
		{"Invoices.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.Invoices.Cancel(ctx, "inv_1", nil))
		}, http.MethodPost, "/v3/invoices/inv_1/cancel", ""},

		// Finance
		{"Finance.Balance", func(ctx context.Context, c *Client) error {
			return ignore(c.Finance.Balance(ctx))
		}, http.MethodGet, "/v3/finance/balance", ""},
		{"Finance.PaymentStatistics", func(ctx context.Context, c *Client) error {
			return ignore(c.Finance.PaymentStatistics(ctx, nil))
		}, http.MethodGet, "/v3/finance/payment/statistics", ""},
		{"Finance.SplitStatistics", func(ctx context.Context, c *Client) error {
			return ignore(c.Finance.SplitStatistics(ctx))
		}, http.MethodGet, "/v3/finance/split/statistics", ""},
		{"FinancialTransactions.List", func(ctx context.Context, c *Client) error {
			return ignore(c.FinancialTransactions.List(ctx, &ListFinancialTransactionsParams{StartDate: String("2026-01-01")}))
		}, http.MethodGet, "/v3/financialTransactions", "startDate=2026-01-01"},

		// Account
		{"AccountInfo.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.AccountInfo.Get(ctx))
		}, http.MethodGet, "/v3/myAccount/commercialInfo/", ""},
		{"AccountInfo.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.AccountInfo.Update(ctx, &AccountInfoUpdateRequest{}))
		}, http.MethodPost, "/v3/myAccount/commercialInfo/", ""},
		{"AccountDocuments.ListPending", func(ctx context.Context, c *Client) error {
			return ignore(c.AccountDocuments.ListPending(ctx))
		}, http.MethodGet, "/v3/myAccount/documents", ""},
		{"AccountDocuments.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.AccountDocuments.Get(ctx, "fil_1"))
		}, http.MethodGet, "/v3/myAccount/documents/files/fil_1", ""},
		{"AccountDocuments.Delete", func(ctx context.Context, c *Client) error {
			return ignore(c.AccountDocuments.Delete(ctx, "fil_1"))
		}, http.MethodDelete, "/v3/myAccount/documents/files/fil_1", ""},
		{"Subaccounts.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Subaccounts.List(ctx, nil))
		}, http.MethodGet, "/v3/accounts", ""},
		{"Subaccounts.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Subaccounts.Create(ctx, &SubaccountCreateRequest{}))
		}, http.MethodPost, "/v3/accounts", ""},
		{"Subaccounts.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Subaccounts.Get(ctx, "acc_1"))
		}, http.MethodGet, "/v3/accounts/acc_1", ""},
		{"Notifications.Update", func(ctx context.Context, c *Client) error {
			return ignore(c.Notifications.Update(ctx, "not_1", &NotificationUpdateRequest{}))
		}, http.MethodPut, "/v3/notifications/not_1", ""},
		{"Notifications.UpdateBatch", func(ctx context.Context, c *Client) error {
			return ignore(c.Notifications.UpdateBatch(ctx, &NotificationBatchRequest{Customer: "cus_1"}))
		}, http.MethodPut, "/v3/notifications/batch", ""},

		// Everything else
		{"CreditCards.Tokenize", func(ctx context.Context, c *Client) error {
			return ignore(c.CreditCards.Tokenize(ctx, &CreditCardTokenizeRequest{}))
		}, http.MethodPost, "/v3/creditCard/tokenizeCreditCard", ""},
		{"Checkouts.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Checkouts.Create(ctx, &CheckoutCreateRequest{}))
		}, http.MethodPost, "/v3/checkouts", ""},
		{"Checkouts.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.Checkouts.Cancel(ctx, "chk_1"))
		}, http.MethodPost, "/v3/checkouts/chk_1/cancel", ""},
		{"Bills.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Bills.List(ctx, page))
		}, http.MethodGet, "/v3/bill", "offset=20&limit=10"},
		{"Bills.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.Bills.Create(ctx, &BillCreateRequest{}))
		}, http.MethodPost, "/v3/bill", ""},
		{"Bills.Simulate", func(ctx context.Context, c *Client) error {
			return ignore(c.Bills.Simulate(ctx, &BillSimulateRequest{}))
		}, http.MethodPost, "/v3/bill/simulate", ""},
		{"Bills.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Bills.Get(ctx, "bil_1"))
		}, http.MethodGet, "/v3/bill/bil_1", ""},
		{"Bills.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.Bills.Cancel(ctx, "bil_1"))
		}, http.MethodPost, "/v3/bill/bil_1/cancel", ""},
		{"Chargebacks.List", func(ctx context.Context, c *Client) error {
			return ignore(c.Chargebacks.List(ctx, nil))
		}, http.MethodGet, "/v3/chargebacks/", ""},
		{"Chargebacks.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.Chargebacks.Get(ctx, "pay_1"))
		}, http.MethodGet, "/v3/payments/pay_1/chargeback", ""},
		{"CreditBureauReports.List", func(ctx context.Context, c *Client) error {
			return ignore(c.CreditBureauReports.List(ctx, &ListCreditBureauReportsParams{StartDate: String("2026-01-01"), EndDate: String("2026-02-01")}))
		}, http.MethodGet, "/v3/creditBureauReport", "startDate=2026-01-01&endDate=2026-02-01"},
		{"CreditBureauReports.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.CreditBureauReports.Create(ctx, &CreditBureauReportCreateRequest{CpfCnpj: "24971563792"}))
		}, http.MethodPost, "/v3/creditBureauReport", ""},
		{"CreditBureauReports.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.CreditBureauReports.Get(ctx, "cbr_1"))
		}, http.MethodGet, "/v3/creditBureauReport/cbr_1", ""},
		{"Escrow.FinishPaymentEscrow", func(ctx context.Context, c *Client) error {
			return ignore(c.Escrow.FinishPaymentEscrow(ctx, "pay_1"))
		}, http.MethodPost, "/v3/escrow/pay_1/finish", ""},
		{"FiscalInfo.MunicipalOptions", func(ctx context.Context, c *Client) error {
			return ignore(c.FiscalInfo.MunicipalOptions(ctx))
		}, http.MethodGet, "/v3/fiscalInfo/municipalOptions", ""},
		{"FiscalInfo.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.FiscalInfo.Get(ctx))
		}, http.MethodGet, "/v3/fiscalInfo/", ""},
		{"FiscalInfo.ListServices", func(ctx context.Context, c *Client) error {
			return ignore(c.FiscalInfo.ListServices(ctx, &ListMunicipalServicesParams{Pagination: Pagination{Limit: Int(5)}}))
		}, http.MethodGet, "/v3/fiscalInfo/services", "limit=5"},
		{"FiscalInfo.ListNBSCodes", func(ctx context.Context, c *Client) error {
			return ignore(c.FiscalInfo.ListNBSCodes(ctx, nil))
		}, http.MethodGet, "/v3/fiscalInfo/nbsCodes", ""},
		{"FiscalInfo.UpdateUseNationalPortal", func(ctx context.Context, c *Client) error {
			return ignore(c.FiscalInfo.UpdateUseNationalPortal(ctx, true))
		}, http.MethodPost, "/v3/fiscalInfo/nationalPortal", ""},
		{"MobilePhoneRecharges.List", func(ctx context.Context, c *Client) error {
			return ignore(c.MobilePhoneRecharges.List(ctx, nil))
		}, http.MethodGet, "/v3/mobilePhoneRecharges", ""},
		{"MobilePhoneRecharges.Create", func(ctx context.Context, c *Client) error {
			return ignore(c.MobilePhoneRecharges.Create(ctx, &MobilePhoneRechargeCreateRequest{Phone: "47998781877", Value: 20}))
		}, http.MethodPost, "/v3/mobilePhoneRecharges", ""},
		{"MobilePhoneRecharges.Get", func(ctx context.Context, c *Client) error {
			return ignore(c.MobilePhoneRecharges.Get(ctx, "rch_1"))
		}, http.MethodGet, "/v3/mobilePhoneRecharges/rch_1", ""},
		{"MobilePhoneRecharges.Cancel", func(ctx context.Context, c *Client) error {
			return ignore(c.MobilePhoneRecharges.Cancel(ctx, "rch_1"))
		}, http.MethodPost, "/v3/mobilePhoneRecharges/rch_1/cancel", ""},
		{"MobilePhoneRecharges.FindProvider", func(ctx context.Context, c *Client) error {
			return ignore(c.MobilePhoneRecharges.FindProvider(ctx, "47998781877"))
		}, http.MethodGet, "/v3/mobilePhoneRecharges/47998781877/provider", ""},
		{"Sandbox.ConfirmPayment", func(ctx context.Context, c *Client) error {
			return ignore(c.Sandbox.ConfirmPayment(ctx, "pay_1"))
		}, http.MethodPost, "/v3/sandbox/payment/pay_1/confirm", ""},
		{"Sandbox.ForceOverdue", func(ctx context.Context, c *Client) error {
			return ignore(c.Sandbox.ForceOverdue(ctx, "pay_1"))
		}, http.MethodPost, "/v3/sandbox/payment/pay_1/overdue", ""},
	}
}

func TestServices_Routes(t *testing.T) {
	for _, tc := range routeCases() {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestClient(t, http.StatusOK, `{}`)

			require.NoError(t, tc.call(context.Background(), c))

			req := rec.request()
			assert.Equal(t, tc.method, req.Method)
			assert.Equal(t, tc.path, req.Path)
			assert.Equal(t, tc.query, req.RawQuery)
			assert.Equal(t, "test-key", req.Header.Get("access_token"))
			if tc.method == http.MethodGet || tc.method == http.MethodDelete {
				assert.Empty(t, req.Body)
			} else {
				assert.NotEmpty(t, req.Body)
			}
		})
	}
}

func TestServices_ActionWithoutInputSendsEmptyObject(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"id":"cus_1","deleted":false}`)

	customer, err := c.Customers.Restore(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Equal(t, "cus_1", customer.ID)

	req := rec.request()
	assert.JSONEq(t, `{}`, string(req.Body))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestPaymentService_CreateSendsOnlySetFields(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"id":"pay_1","status":"PENDING","value":129.9}`)

	payment, err := c.Payments.Create(context.Background(), &PaymentCreateRequest{
		Customer:    "cus_1",
		BillingType: BillingTypePix,
		Value:       129.9,
		DueDate:     "2026-11-10",
		Description: String("Pedido 42"),
		Discount:    &Discount{Value: 5, DueDateLimitDays: Int(0)},
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_1", payment.ID)
	assert.Equal(t, 129.9, payment.Value)

	assert.JSONEq(t, `{
		"customer": "cus_1",
		"billingType": "PIX",
		"value": 129.9,
		"dueDate": "2026-11-10",
		"description": "Pedido 42",
		"discount": {"value": 5, "dueDateLimitDays": 0}
	}`, string(rec.request().Body))
}

func TestPaymentService_ListDecodesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{
		"object": "list",
		"hasMore": true,
		"totalCount": 31,
		"limit": 10,
		"offset": 0,
		"data": [{"id": "pay_1", "customer": "cus_1", "nossoNumero": "123"}]
	}`)

	list, err := c.Payments.List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "list", list.Object)
	assert.True(t, list.HasMore)
	assert.Equal(t, 31, list.TotalCount)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "pay_1", list.Data[0].ID)
	assert.Equal(t, json.RawMessage(`"123"`), list.Data[0].Extra["nossoNumero"])
	assert.Nil(t, list.Extra)
}

func TestInstallmentService_PaymentBookReturnsRawBytes(t *testing.T) {
	pdf := "%PDF-1.4 fake"
	c, rec := newTestClient(t, http.StatusOK, pdf)
	rec.header = http.Header{"Content-Type": {"application/pdf"}}

	data, err := c.Installments.PaymentBook(context.Background(), "ins_1", &PaymentBookParams{Sort: String("dueDate"), Order: String("asc")})
	require.NoError(t, err)
	assert.Equal(t, []byte(pdf), data)

	req := rec.request()
	assert.Equal(t, "/v3/installments/ins_1/paymentBook", req.Path)
	assert.Equal(t, "sort=dueDate&order=asc", req.RawQuery)
	assert.Equal(t, "application/pdf", req.Header.Get("Accept"))
}

func TestPaymentDunningService_SimulateWithBody(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"estimatedValue":12.5}`)

	sim, err := c.PaymentDunnings.Simulate(context.Background(), "", map[string]string{"type": DunningTypeCreditBureau})
	require.NoError(t, err)
	assert.Equal(t, 12.5, sim.EstimatedValue)

	req := rec.request()
	assert.Empty(t, req.RawQuery)
	assert.JSONEq(t, `{"type":"CREDIT_BUREAU"}`, string(req.Body))
}

func TestFiscalInfoService_UpdateUseNationalPortalBody(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"useNationalPortal":false}`)

	setting, err := c.FiscalInfo.UpdateUseNationalPortal(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, setting.UseNationalPortal)
	assert.JSONEq(t, `{"useNationalPortal":false}`, string(rec.request().Body))
}

func TestNotificationService_UpdateBatchFlattensItems(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"notifications":[{"id":"not_1","enabled":true}]}`)

	resp, err := c.Notifications.UpdateBatch(context.Background(), &NotificationBatchRequest{
		Customer: "cus_1",
		Notifications: []NotificationBatchItem{{
			ID:                        "not_1",
			NotificationUpdateRequest: NotificationUpdateRequest{Enabled: Bool(true)},
		}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "not_1", resp.Notifications[0].ID)

	assert.JSONEq(t, `{"customer":"cus_1","notifications":[{"id":"not_1","enabled":true}]}`, string(rec.request().Body))
}
