package period

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// GetPeriodOutput represents the output of fetching one period.
type GetPeriodOutput struct {
	Period      *entity.Period
	Memberships []*entity.MembershipWithMember
}

// GetPeriodUseCase fetches a period with its draw memberships.
type GetPeriodUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewGetPeriodUseCase creates a new GetPeriodUseCase instance.
func NewGetPeriodUseCase(periodRepo adapter.PeriodRepository) *GetPeriodUseCase {
	return &GetPeriodUseCase{
		periodRepo: periodRepo,
	}
}

// Execute fetches the period.
func (uc *GetPeriodUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetPeriodOutput, error) {
	period, err := uc.periodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodNotFound, "period not found", domainerror.ErrPeriodNotFound)
	}

	memberships, err := uc.periodRepo.FindMemberships(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	return &GetPeriodOutput{Period: period, Memberships: memberships}, nil
}
