package asaas

import (
	"context"
	"net/http"
)

// FinanceService reads the balance and billing statistics.
type FinanceService struct{ service }

// Balance returns the account balance.
func (s *FinanceService) Balance(ctx context.Context) (*Balance, error) {
	rb := s.request(http.MethodGet, "v3/finance/balance")
	return execute[Balance](ctx, s.service, rb)
}

// PaymentStatistics aggregates the charges matching params.
func (s *FinanceService) PaymentStatistics(ctx context.Context, params *PaymentStatisticsParams) (*PaymentStatistics, error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/finance/payment/statistics"), params)
	return execute[PaymentStatistics](ctx, s.service, rb)
}

// SplitStatistics returns split values to receive and to pay.
func (s *FinanceService) SplitStatistics(ctx context.Context) (*SplitStatistics, error) {
	rb := s.request(http.MethodGet, "v3/finance/split/statistics")
	return execute[SplitStatistics](ctx, s.service, rb)
}

// FinancialTransactionService reads the account statement.
type FinancialTransactionService struct{ service }

// List returns statement entries matching params.
func (s *FinancialTransactionService) List(ctx context.Context, params *ListFinancialTransactionsParams) (*ListResponse[FinancialTransaction], error) {
	rb := applyQuery(s.request(http.MethodGet, "v3/financialTransactions"), params)
	return execute[ListResponse[FinancialTransaction]](ctx, s.service, rb)
}
