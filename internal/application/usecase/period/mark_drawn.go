package period

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// MarkDrawnInput represents the input for recording an arisan draw.
type MarkDrawnInput struct {
	PeriodID uuid.UUID
	MemberID uuid.UUID
}

// MarkDrawnOutput represents the output of recording an arisan draw.
type MarkDrawnOutput struct {
	Membership *entity.PeriodMembership
}

// MarkDrawnUseCase flips a member's draw status for a period. The
// transition is one-way: a drawn member stays drawn.
type MarkDrawnUseCase struct {
	periodRepo adapter.PeriodRepository
}

// NewMarkDrawnUseCase creates a new MarkDrawnUseCase instance.
func NewMarkDrawnUseCase(periodRepo adapter.PeriodRepository) *MarkDrawnUseCase {
	return &MarkDrawnUseCase{
		periodRepo: periodRepo,
	}
}

// Execute records the draw.
func (uc *MarkDrawnUseCase) Execute(ctx context.Context, input MarkDrawnInput) (*MarkDrawnOutput, error) {
	membership, err := uc.periodRepo.FindMembership(ctx, input.PeriodID, input.MemberID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodeMembershipNotFound, "member is not enrolled in this period", domainerror.ErrMembershipNotFound)
	}
	if membership.Status == entity.DrawStatusDrawn {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodeAlreadyDrawn, "member has already been drawn this period", domainerror.ErrAlreadyDrawn)
	}

	now := time.Now().UTC()
	membership.Status = entity.DrawStatusDrawn
	membership.DrawnAt = &now
	membership.UpdatedAt = now

	if err := uc.periodRepo.UpdateMembership(ctx, membership); err != nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodSaveFailed, "failed to record draw", err)
	}

	return &MarkDrawnOutput{Membership: membership}, nil
}
