package recap

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// ResolvePeriodInput represents the input for resolving the reporting window.
type ResolvePeriodInput struct {
	PeriodID *uuid.UUID
	Year     *int
}

// ResolvePeriodUseCase resolves which window a recap runs against. An
// explicit period ID wins, then a bare year synthesizes a calendar-year
// window, otherwise the most recently started period is used.
type ResolvePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewResolvePeriodUseCase creates a new ResolvePeriodUseCase instance.
func NewResolvePeriodUseCase(periodRepo adapter.PeriodRepository) *ResolvePeriodUseCase {
	return &ResolvePeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute resolves the reporting window.
func (uc *ResolvePeriodUseCase) Execute(ctx context.Context, input ResolvePeriodInput) (*entity.ResolvedPeriod, error) {
	if input.PeriodID != nil {
		period, err := uc.periodRepo.FindByID(ctx, *input.PeriodID)
		if err != nil {
			return nil, err
		}
		if period == nil {
			return nil, domainerror.NewRecapError(domainerror.ErrCodeRecapPeriodNotFound, "period not found", domainerror.ErrPeriodNotFound)
		}
		return resolvedFromPeriod(period), nil
	}

	if input.Year != nil {
		year := *input.Year
		return &entity.ResolvedPeriod{
			ID:            nil,
			Name:          fmt.Sprintf("Tahun %d", year),
			StartDate:     fmt.Sprintf("%04d-01-01", year),
			EndDate:       fmt.Sprintf("%04d-12-31", year),
			DefaultAmount: decimal.Zero,
		}, nil
	}

	period, err := uc.periodRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeNoPeriodAvailable, "no period available", domainerror.ErrNoPeriodAvailable)
	}
	return resolvedFromPeriod(period), nil
}

func resolvedFromPeriod(period *entity.Period) *entity.ResolvedPeriod {
	id := period.ID
	return &entity.ResolvedPeriod{
		ID:            &id,
		Name:          period.Name,
		StartDate:     period.StartDate,
		EndDate:       period.EndDate,
		DefaultAmount: period.DefaultAmount,
	}
}
