// Package member contains roster management use cases.
package member

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// CreateMemberInput represents the input for registering a member.
type CreateMemberInput struct {
	Name      string
	Address   string
	BirthDate string
	Unit      string
	Category  entity.MemberCategory
	Role      *entity.MemberRole
	AdminID   *uuid.UUID
}

// CreateMemberOutput represents the output of registering a member.
type CreateMemberOutput struct {
	Member *entity.Member
}

// CreateMemberUseCase registers a member. Arisan participants are
// backfilled into the draw roster of every existing period.
type CreateMemberUseCase struct {
	memberRepo adapter.MemberRepository
	periodRepo adapter.PeriodRepository
}

// NewCreateMemberUseCase creates a new CreateMemberUseCase instance.
func NewCreateMemberUseCase(memberRepo adapter.MemberRepository, periodRepo adapter.PeriodRepository) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		memberRepo: memberRepo,
		periodRepo: periodRepo,
	}
}

// Execute validates and registers the member.
func (uc *CreateMemberUseCase) Execute(ctx context.Context, input CreateMemberInput) (*CreateMemberOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberNameRequired, "member name is required", domainerror.ErrMemberNameRequired)
	}
	if input.Category != entity.MemberCategoryKas && input.Category != entity.MemberCategoryArisan {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeInvalidMemberCategory, "invalid member category", domainerror.ErrInvalidMemberCategory)
	}
	if input.Role != nil && !entity.ValidMemberRole(*input.Role) {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeInvalidMemberRole, "invalid member role", domainerror.ErrInvalidMemberRole)
	}
	if input.BirthDate != "" && !recap.ValidISODate(input.BirthDate) {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberSaveFailed, "invalid birth date, expected YYYY-MM-DD", nil)
	}

	member := entity.NewMember(input.AdminID, strings.TrimSpace(input.Name), input.Address, input.BirthDate, input.Unit, input.Category)
	if input.Role != nil {
		member.Role = *input.Role
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberSaveFailed, "failed to create member", err)
	}

	if member.Category == entity.MemberCategoryArisan {
		if err := uc.backfillMemberships(ctx, member); err != nil {
			return nil, err
		}
	}

	return &CreateMemberOutput{Member: member}, nil
}

func (uc *CreateMemberUseCase) backfillMemberships(ctx context.Context, member *entity.Member) error {
	periods, err := uc.periodRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(periods) == 0 {
		return nil
	}

	memberships := make([]*entity.PeriodMembership, 0, len(periods))
	for _, p := range periods {
		memberships = append(memberships, &entity.PeriodMembership{
			ID:        uuid.New(),
			PeriodID:  p.ID,
			MemberID:  member.ID,
			Status:    entity.DrawStatusNotYetDrawn,
			CreatedAt: member.CreatedAt,
			UpdatedAt: member.CreatedAt,
		})
	}
	if err := uc.periodRepo.CreateMemberships(ctx, memberships); err != nil {
		return domainerror.NewMemberError(domainerror.ErrCodeMemberSaveFailed, "failed to backfill draw memberships", err)
	}
	return nil
}
