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

// CreateTransactionInput represents the input for recording a cash movement.
type CreateTransactionInput struct {
	Fund    entity.CashFund
	Type    entity.FlowType
	Amount  decimal.Decimal
	Memo    string
	Date    string
	AdminID *uuid.UUID
}

// CreateTransactionOutput represents the output of recording a cash movement.
type CreateTransactionOutput struct {
	Transaction *entity.FundTransaction
}

// CreateTransactionUseCase records one inflow or outflow in a cash fund.
type CreateTransactionUseCase struct {
	fundRepo adapter.FundTransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(fundRepo adapter.FundTransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		fundRepo: fundRepo,
	}
}

// Execute validates and persists the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Fund, input.Type, input.Amount, input.Date); err != nil {
		return nil, err
	}

	transaction := entity.NewFundTransaction(input.Fund, input.Type, input.Amount, input.Memo, input.Date, input.AdminID)
	if err := uc.fundRepo.Create(ctx, transaction); err != nil {
		return nil, domainerror.NewFundError(domainerror.ErrCodeFundSaveFailed, "failed to save fund transaction", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

func validateTransactionFields(fund entity.CashFund, flowType entity.FlowType, amount decimal.Decimal, date string) error {
	if !entity.ValidCashFund(fund) {
		return domainerror.NewFundError(domainerror.ErrCodeInvalidCashFund, "unknown cash fund", domainerror.ErrInvalidCashFund)
	}
	if !entity.ValidFlowType(flowType) {
		return domainerror.NewFundError(domainerror.ErrCodeInvalidFlowType, "invalid flow type", domainerror.ErrInvalidFlowType)
	}
	if !amount.IsPositive() {
		return domainerror.NewFundError(domainerror.ErrCodeInvalidFundAmount, "transaction amount must be positive", domainerror.ErrInvalidFundAmount)
	}
	if !recap.ValidISODate(date) {
		return domainerror.NewFundError(domainerror.ErrCodeInvalidFundDate, "invalid date, expected YYYY-MM-DD", nil)
	}
	return nil
}
