package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// FundTransactionFilter defines filter options for listing cash fund
// transactions. Date filters are inclusive ISO strings.
type FundTransactionFilter struct {
	Fund      entity.CashFund
	FromDate  string
	ToDate    string
	Date      string // exact date, overrides the range when set
	Type      *entity.FlowType
	Search    string // Case-insensitive memo match
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
}

// FundTransactionRepository defines the interface for cash fund
// transaction persistence operations.
type FundTransactionRepository interface {
	// Create creates a new fund transaction in the database.
	Create(ctx context.Context, transaction *entity.FundTransaction) error

	// FindByID retrieves a fund transaction by its ID within a fund.
	FindByID(ctx context.Context, fund entity.CashFund, id uuid.UUID) (*entity.FundTransaction, error)

	// FindByFilter retrieves the full filtered set ordered by date
	// ascending, then creation time ascending. Pagination happens in
	// the use case so running balances can cover the whole set.
	FindByFilter(ctx context.Context, filter FundTransactionFilter) ([]*entity.FundTransaction, error)

	// GetSummary aggregates inflow and outflow totals for a fund,
	// optionally restricted to one calendar year.
	GetSummary(ctx context.Context, fund entity.CashFund, year *int) (*entity.FundSummary, error)

	// GetFundBalance returns the signed sum over the whole unfiltered
	// fund stream.
	GetFundBalance(ctx context.Context, fund entity.CashFund) (decimal.Decimal, error)

	// Update updates an existing fund transaction in the database.
	Update(ctx context.Context, transaction *entity.FundTransaction) error

	// Delete removes a fund transaction from the database.
	Delete(ctx context.Context, fund entity.CashFund, id uuid.UUID) error
}
