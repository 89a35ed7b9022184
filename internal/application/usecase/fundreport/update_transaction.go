package fundreport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a cash movement.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	Fund    entity.CashFund
	ID      uuid.UUID
	Type    *entity.FlowType
	Amount  *decimal.Decimal
	Memo    *string
	Date    *string
	AdminID *uuid.UUID
}

// UpdateTransactionOutput represents the output of updating a cash movement.
type UpdateTransactionOutput struct {
	Transaction *entity.FundTransaction
}

// UpdateTransactionUseCase updates one fund transaction in place.
type UpdateTransactionUseCase struct {
	fundRepo adapter.FundTransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(fundRepo adapter.FundTransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		fundRepo: fundRepo,
	}
}

// Execute applies the partial update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if !entity.ValidCashFund(input.Fund) {
		return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidCashFund, "unknown cash fund", domainerror.ErrInvalidCashFund)
	}

	transaction, err := uc.fundRepo.FindByID(ctx, input.Fund, input.ID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, domainerror.NewFundError(domainerror.ErrCodeFundTransactionNotFound, "fund transaction not found", domainerror.ErrFundTransactionNotFound)
	}

	if input.Type != nil {
		if !entity.ValidFlowType(*input.Type) {
			return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidFlowType, "invalid flow type", domainerror.ErrInvalidFlowType)
		}
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidFundAmount, "transaction amount must be positive", domainerror.ErrInvalidFundAmount)
		}
		transaction.Amount = *input.Amount
	}
	if input.Memo != nil {
		transaction.Memo = *input.Memo
	}
	if input.Date != nil {
		if !recap.ValidISODate(*input.Date) {
			return nil, domainerror.NewFundError(domainerror.ErrCodeInvalidFundDate, "invalid date, expected YYYY-MM-DD", nil)
		}
		transaction.Date = *input.Date
	}
	if input.AdminID != nil {
		transaction.AdminID = input.AdminID
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.fundRepo.Update(ctx, transaction); err != nil {
		return nil, domainerror.NewFundError(domainerror.ErrCodeFundSaveFailed, "failed to update fund transaction", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
