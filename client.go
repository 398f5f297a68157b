package asaas

import (
	"context"

	"github.com/lucasbrito-wdt/asaas-sdk-go/internal/api"
)

// Version is the SDK version.
const Version = api.Version

// Environment is the base URL of an Asaas deployment.
type Environment = api.Environment

// Deployments.
const (
	Production = api.Production
	Sandbox    = api.Sandbox
)

// RetryPolicy controls which failures are retried and how long to wait.
type RetryPolicy = api.RetryPolicy

// Settings is a resolved client configuration.
type Settings = api.Settings

// DefaultRetryPolicy returns the retry policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return api.DefaultRetryPolicy()
}

// Client is the Asaas API client. Each resource is reached through its
// service field. A Client is safe for concurrent use.
type Client struct {
	api *api.Client

	Payments              *PaymentService
	PaymentRefunds        *PaymentRefundService
	PaymentDocuments      *PaymentDocumentService
	PaymentDunnings       *PaymentDunningService
	PaymentLinks          *PaymentLinkService
	PaymentSplits         *PaymentSplitService
	LeanPayments          *LeanPaymentService
	Customers             *CustomerService
	Subscriptions         *SubscriptionService
	Installments          *InstallmentService
	Pix                   *PixService
	PixTransactions       *PixTransactionService
	RecurringPix          *RecurringPixService
	Transfers             *TransferService
	Anticipations         *AnticipationService
	Webhooks              *WebhookService
	Invoices              *InvoiceService
	Finance               *FinanceService
	FinancialTransactions *FinancialTransactionService
	AccountInfo           *AccountInfoService
	AccountDocuments      *AccountDocumentService
	Subaccounts           *SubaccountService
	Notifications         *NotificationService
	CreditCards           *CreditCardService
	Checkouts             *CheckoutService
	Bills                 *BillService
	Chargebacks           *ChargebackService
	CreditBureauReports   *CreditBureauReportService
	Escrow                *EscrowService
	FiscalInfo            *FiscalInfoService
	MobilePhoneRecharges  *MobilePhoneRechargeService
	Sandbox               *SandboxService
}

// New creates a client. Unset options take their defaults; the API key may
// be supplied later with SetAPIKey.
func New(opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiCfg := api.Config{
		Settings:        api.Resolve(cfg.overrides),
		HTTPClient:      cfg.httpClient,
		Logger:          cfg.logger,
		TracerProvider:  cfg.tracerProvider,
		RequestIDHeader: cfg.requestIDHeader,
	}
	var metricsErr error
	if cfg.registerer != nil {
		apiCfg.Metrics, metricsErr = api.NewMetrics(cfg.registerer)
	}

	ac := api.NewClient(apiCfg)
	if metricsErr != nil && cfg.logger != nil {
		cfg.logger.Warn().Err(metricsErr).Msg("metrics are recorded but not exported")
	}
	s := service{api: ac, errors: api.ValidationErrors()}

	return &Client{
		api:                   ac,
		Payments:              &PaymentService{s},
		PaymentRefunds:        &PaymentRefundService{s},
		PaymentDocuments:      &PaymentDocumentService{s},
		PaymentDunnings:       &PaymentDunningService{s},
		PaymentLinks:          &PaymentLinkService{s},
		PaymentSplits:         &PaymentSplitService{s},
		LeanPayments:          &LeanPaymentService{s},
		Customers:             &CustomerService{s},
		Subscriptions:         &SubscriptionService{s},
		Installments:          &InstallmentService{s},
		Pix:                   &PixService{s},
		PixTransactions:       &PixTransactionService{s},
		RecurringPix:          &RecurringPixService{s},
		Transfers:             &TransferService{s},
		Anticipations:         &AnticipationService{s},
		Webhooks:              &WebhookService{s},
		Invoices:              &InvoiceService{s},
		Finance:               &FinanceService{s},
		FinancialTransactions: &FinancialTransactionService{s},
		AccountInfo:           &AccountInfoService{s},
		AccountDocuments:      &AccountDocumentService{s},
		Subaccounts:           &SubaccountService{s},
		Notifications:         &NotificationService{s},
		CreditCards:           &CreditCardService{s},
		Checkouts:             &CheckoutService{s},
		Bills:                 &BillService{s},
		Chargebacks:           &ChargebackService{s},
		CreditBureauReports:   &CreditBureauReportService{s},
		Escrow:                &EscrowService{s},
		FiscalInfo:            &FiscalInfoService{s},
		MobilePhoneRecharges:  &MobilePhoneRechargeService{s},
		Sandbox:               &SandboxService{s},
	}
}

// SetEnvironment switches the environment and points the base URL at it.
// Requests already in flight are not affected.
func (c *Client) SetEnvironment(env Environment) {
	c.api.SetEnvironment(env)
}

// SetBaseURL overrides the base URL.
func (c *Client) SetBaseURL(baseURL string) {
	c.api.SetBaseURL(baseURL)
}

// SetAPIKey sets the API key.
func (c *Client) SetAPIKey(key string) {
	c.api.SetAPIKey(key)
}

// SetAPIKeyHeader sets the header that carries the API key.
func (c *Client) SetAPIKeyHeader(header string) {
	c.api.SetAPIKeyHeader(header)
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.api.Settings().BaseURL
}

// Environment returns the current environment.
func (c *Client) Environment() Environment {
	return c.api.Settings().Environment
}

// Settings returns a snapshot of the current configuration.
func (c *Client) Settings() Settings {
	return c.api.Settings()
}

// service is embedded by every resource service.
type service struct {
	api    *api.Client
	errors api.ErrorTable
}

func (s service) request(method, template string) *api.RequestBuilder {
	return s.api.NewRequest(method, template)
}

func execute[T any](ctx context.Context, s service, rb *api.RequestBuilder) (*T, error) {
	var result T
	if err := s.api.Execute(ctx, rb, s.errors, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func executeRaw(ctx context.Context, s service, rb *api.RequestBuilder) ([]byte, error) {
	return s.api.ExecuteRaw(ctx, rb, s.errors)
}
