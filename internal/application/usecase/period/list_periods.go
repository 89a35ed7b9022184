package period

import (
	"context"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

// ListPeriodsOutput represents the output of listing periods.
type ListPeriodsOutput struct {
	Periods []*entity.Period
}

// ListPeriodsUseCase lists all periods, newest first.
type ListPeriodsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewListPeriodsUseCase creates a new ListPeriodsUseCase instance.
func NewListPeriodsUseCase(periodRepo adapter.PeriodRepository) *ListPeriodsUseCase {
	return &ListPeriodsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute lists the periods.
func (uc *ListPeriodsUseCase) Execute(ctx context.Context) (*ListPeriodsOutput, error) {
	periods, err := uc.periodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPeriodsOutput{Periods: periods}, nil
}
