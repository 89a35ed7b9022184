package period

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

// UpdatePeriodInput represents the input for updating a period. Nil
// fields are left unchanged.
type UpdatePeriodInput struct {
	ID            uuid.UUID
	Name          *string
	StartDate     *string
	EndDate       *string
	DefaultAmount *decimal.Decimal
}

// UpdatePeriodOutput represents the output of updating a period.
type UpdatePeriodOutput struct {
	Period *entity.Period
}

// UpdatePeriodUseCase updates a period's window and default amount.
type UpdatePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewUpdatePeriodUseCase creates a new UpdatePeriodUseCase instance.
func NewUpdatePeriodUseCase(periodRepo adapter.PeriodRepository) *UpdatePeriodUseCase {
	return &UpdatePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute applies the partial update.
func (uc *UpdatePeriodUseCase) Execute(ctx context.Context, input UpdatePeriodInput) (*UpdatePeriodOutput, error) {
	period, err := uc.periodRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodNotFound, "period not found", domainerror.ErrPeriodNotFound)
	}

	if input.Name != nil && *input.Name != period.Name {
		existing, err := uc.periodRepo.FindByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodExists, "period already exists", domainerror.ErrPeriodExists)
		}
		period.Name = *input.Name
	}
	if input.StartDate != nil {
		if !recap.ValidISODate(*input.StartDate) {
			return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodDate, "invalid start date", domainerror.ErrInvalidPeriodDate)
		}
		period.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		if !recap.ValidISODate(*input.EndDate) {
			return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodDate, "invalid end date", domainerror.ErrInvalidPeriodDate)
		}
		period.EndDate = *input.EndDate
	}
	if period.EndDate <= period.StartDate {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodRange, "period end date must be after start date", domainerror.ErrInvalidPeriodRange)
	}
	if input.DefaultAmount != nil {
		if input.DefaultAmount.IsNegative() {
			return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodRange, "default amount cannot be negative", nil)
		}
		period.DefaultAmount = *input.DefaultAmount
	}
	period.UpdatedAt = time.Now().UTC()

	if err := uc.periodRepo.Update(ctx, period); err != nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodSaveFailed, "failed to update period", err)
	}

	return &UpdatePeriodOutput{Period: period}, nil
}
