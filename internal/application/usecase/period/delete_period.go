package period

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// DeletePeriodUseCase removes a period and its dependent rows.
type DeletePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewDeletePeriodUseCase creates a new DeletePeriodUseCase instance.
func NewDeletePeriodUseCase(periodRepo adapter.PeriodRepository) *DeletePeriodUseCase {
	return &DeletePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute deletes the period. Ledger entries and memberships go with
// it in the same transaction.
func (uc *DeletePeriodUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	period, err := uc.periodRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if period == nil {
		return domainerror.NewPeriodError(domainerror.ErrCodePeriodNotFound, "period not found", domainerror.ErrPeriodNotFound)
	}

	if err := uc.periodRepo.Delete(ctx, id); err != nil {
		return domainerror.NewPeriodError(domainerror.ErrCodePeriodDeleteFailed, "failed to delete period", err)
	}
	return nil
}
