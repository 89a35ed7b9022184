// Package fundreport contains the running-balance report use cases
// shared by the treasury, waste and night-watch cash funds.
package fundreport

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// defaultFundPerPage is the transaction page size when none is requested.
const defaultFundPerPage = 10

// ListTransactionsInput represents the input for listing fund transactions.
type ListTransactionsInput struct {
	Fund     entity.CashFund
	PeriodID *uuid.UUID
	Year     *int

	// FromDate/ToDate default to the resolved period window when all
	// three date filters are empty. Date overrides the range.
	FromDate string
	ToDate   string
	Date     string

	Type      *entity.FlowType
	Search    string
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal

	Page    int
	PerPage int
}

// FundPaginationOutput represents transaction pagination information.
type FundPaginationOutput struct {
	CurrentPage int
	PerPage     int
	Total       int64
	LastPage    int
}

// ListTransactionsOutput represents the output of listing fund transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.FundTransactionWithBalance
	Pagination   FundPaginationOutput
	Period       *entity.ResolvedPeriod

	// FilteredTotal is the signed sum over the filtered set;
	// FundBalance is the signed sum over the whole fund stream.
	FilteredTotal decimal.Decimal
	FundBalance   decimal.Decimal
}

// ListTransactionsUseCase lists one cash fund's transactions newest
// first with a running balance computed over the full filtered set.
type ListTransactionsUseCase struct {
	resolvePeriod *recap.ResolvePeriodUseCase
	fundRepo      adapter.FundTransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(resolvePeriod *recap.ResolvePeriodUseCase, fundRepo adapter.FundTransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		resolvePeriod: resolvePeriod,
		fundRepo:      fundRepo,
	}
}

// Execute builds the report page.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	full, err := uc.buildReport(ctx, input)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultFundPerPage
	}

	total := int64(len(full.Transactions))
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	start := (page - 1) * perPage
	if start > len(full.Transactions) {
		start = len(full.Transactions)
	}
	end := start + perPage
	if end > len(full.Transactions) {
		end = len(full.Transactions)
	}

	full.Transactions = full.Transactions[start:end]
	full.Pagination = FundPaginationOutput{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
	return full, nil
}

// buildReport fetches the full filtered set, threads the running
// balance through it ascending and reverses it for display.
func (uc *ListTransactionsUseCase) buildReport(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if !entity.ValidCashFund(input.Fund) {
		return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidCashFund, "unknown cash fund", domainerror.ErrInvalidCashFund)
	}
	for _, d := range []string{input.FromDate, input.ToDate, input.Date} {
		if d != "" && !recap.ValidISODate(d) {
			return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidFundDate, "invalid date, expected YYYY-MM-DD", nil)
		}
	}
	if input.Type != nil && !entity.ValidFlowType(*input.Type) {
		return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidFlowType, "invalid flow type", domainerror.ErrInvalidFlowType)
	}

	fromDate := input.FromDate
	toDate := input.ToDate
	var resolved *entity.ResolvedPeriod
	if fromDate == "" && toDate == "" && input.Date == "" {
		var err error
		resolved, err = uc.resolvePeriod.Execute(ctx, recap.ResolvePeriodInput{PeriodID: input.PeriodID, Year: input.Year})
		if err != nil {
			return nil, err
		}
		fromDate = resolved.StartDate
		toDate = resolved.EndDate
	}

	transactions, err := uc.fundRepo.FindByFilter(ctx, adapter.FundTransactionFilter{
		Fund:      input.Fund,
		FromDate:  fromDate,
		ToDate:    toDate,
		Date:      input.Date,
		Type:      input.Type,
		Search:    input.Search,
		AmountMin: input.AmountMin,
		AmountMax: input.AmountMax,
	})
	if err != nil {
		return nil, err
	}

	withBalance, filteredTotal := threadBalance(transactions)

	fundBalance, err := uc.fundRepo.GetFundBalance(ctx, input.Fund)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{
		Transactions:  withBalance,
		Period:        resolved,
		FilteredTotal: filteredTotal,
		FundBalance:   fundBalance,
	}, nil
}

// threadBalance walks the ascending stream accumulating the signed
// running balance, then returns the annotated set newest first along
// with the filtered total.
func threadBalance(ascending []*entity.FundTransaction) ([]*entity.FundTransactionWithBalance, decimal.Decimal) {
	balance := decimal.Zero
	annotated := make([]*entity.FundTransactionWithBalance, len(ascending))
	for i, txn := range ascending {
		balance = balance.Add(txn.SignedAmount())
		annotated[i] = &entity.FundTransactionWithBalance{
			Transaction:    txn,
			RunningBalance: balance,
		}
	}

	descending := make([]*entity.FundTransactionWithBalance, len(annotated))
	for i, item := range annotated {
		descending[len(annotated)-1-i] = item
	}
	return descending, balance
}
