package fundreport

import (
	"context"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// GetSummaryInput represents the input for summarizing a cash fund.
type GetSummaryInput struct {
	Fund entity.CashFund
	Year *int
}

// GetSummaryOutput represents the output of summarizing a cash fund.
type GetSummaryOutput struct {
	Summary *entity.FundSummary
}

// GetSummaryUseCase aggregates one cash fund's inflow, outflow and balance.
type GetSummaryUseCase struct {
	fundRepo adapter.FundTransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(fundRepo adapter.FundTransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		fundRepo: fundRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if !entity.ValidCashFund(input.Fund) {
		return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidCashFund, "unknown cash fund", domainerror.ErrInvalidCashFund)
	}

	summary, err := uc.fundRepo.GetSummary(ctx, input.Fund, input.Year)
	if err != nil {
		return nil, err
	}
	return &GetSummaryOutput{Summary: summary}, nil
}
