package period

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// ListDrawsInput represents the input for listing a period's draw roster.
type ListDrawsInput struct {
	PeriodID    uuid.UUID
	PendingOnly bool
}

// ListDrawsOutput represents the output of listing a period's draw roster.
type ListDrawsOutput struct {
	Memberships []*entity.MembershipWithMember
}

// ListDrawsUseCase lists a period's draw memberships, optionally only
// those still waiting for their turn.
type ListDrawsUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewListDrawsUseCase creates a new ListDrawsUseCase instance.
func NewListDrawsUseCase(periodRepo adapter.PeriodRepository) *ListDrawsUseCase {
	return &ListDrawsUseCase{
		periodRepo: periodRepo,
	}
}

// Execute lists the memberships.
func (uc *ListDrawsUseCase) Execute(ctx context.Context, input ListDrawsInput) (*ListDrawsOutput, error) {
	period, err := uc.periodRepo.FindByID(ctx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodNotFound, "period not found", domainerror.ErrPeriodNotFound)
	}

	var status *entity.DrawStatus
	if input.PendingOnly {
		pending := entity.DrawStatusNotYetDrawn
		status = &pending
	}

	memberships, err := uc.periodRepo.FindMemberships(ctx, input.PeriodID, status)
	if err != nil {
		return nil, err
	}

	return &ListDrawsOutput{Memberships: memberships}, nil
}
