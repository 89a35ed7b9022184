package fundreport

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a cash movement.
type DeleteTransactionInput struct {
	Fund entity.CashFund
	ID   uuid.UUID
}

// DeleteTransactionUseCase removes one fund transaction.
type DeleteTransactionUseCase struct {
	fundRepo adapter.FundTransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(fundRepo adapter.FundTransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		fundRepo: fundRepo,
	}
}

// Execute deletes the transaction.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if !entity.ValidCashFund(input.Fund) {
		return domainerror.NewFundError(domainerror.ErrCodeInvalidCashFund, "unknown cash fund", domainerror.ErrInvalidCashFund)
	}

	transaction, err := uc.fundRepo.FindByID(ctx, input.Fund, input.ID)
	if err != nil {
		return err
	}
	if transaction == nil {
		return domainerror.NewFundError(domainerror.ErrCodeFundTransactionNotFound, "fund transaction not found", domainerror.ErrFundTransactionNotFound)
	}

	if err := uc.fundRepo.Delete(ctx, input.Fund, input.ID); err != nil {
		return domainerror.NewFundError(domainerror.ErrCodeFundDeleteFailed, "failed to delete fund transaction", err)
	}
	return nil
}
