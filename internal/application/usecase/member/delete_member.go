package member

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// DeleteMemberUseCase removes a member and its dependent rows.
type DeleteMemberUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewDeleteMemberUseCase creates a new DeleteMemberUseCase instance.
func NewDeleteMemberUseCase(memberRepo adapter.MemberRepository) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
	}
}

// Execute deletes the member. Ledger entries and draw memberships go
// with it in the same transaction.
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	member, err := uc.memberRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if member == nil {
		return domainerror.NewMemberError(domainerror.ErrCodeMemberNotFound, "member not found", domainerror.ErrMemberNotFound)
	}

	if err := uc.memberRepo.Delete(ctx, id); err != nil {
		return domainerror.NewMemberError(domainerror.ErrCodeMemberDeleteFailed, "failed to delete member", err)
	}
	return nil
}
