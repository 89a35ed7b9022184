package member

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// UpdateMemberInput represents the input for updating a member profile.
// Nil fields are left unchanged.
type UpdateMemberInput struct {
	ID        uuid.UUID
	Name      *string
	Address   *string
	BirthDate *string
	Unit      *string
	Role      *entity.MemberRole
}

// UpdateMemberOutput represents the output of updating a member profile.
type UpdateMemberOutput struct {
	Member *entity.Member
}

// UpdateMemberUseCase updates a member profile.
type UpdateMemberUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewUpdateMemberUseCase creates a new UpdateMemberUseCase instance.
func NewUpdateMemberUseCase(memberRepo adapter.MemberRepository) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo: memberRepo,
	}
}

// Execute applies the partial update.
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, input UpdateMemberInput) (*UpdateMemberOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberNotFound, "member not found", domainerror.ErrMemberNotFound)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberNameRequired, "member name is required", domainerror.ErrMemberNameRequired)
		}
		member.Name = name
	}
	if input.Address != nil {
		member.Address = *input.Address
	}
	if input.BirthDate != nil {
		if *input.BirthDate != "" && !recap.ValidISODate(*input.BirthDate) {
			return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberSaveFailed, "invalid birth date, expected YYYY-MM-DD", nil)
		}
		member.BirthDate = *input.BirthDate
	}
	if input.Unit != nil {
		member.Unit = *input.Unit
	}
	if input.Role != nil {
		if !entity.ValidMemberRole(*input.Role) {
			return nil, domainerror.NewMemberError(domainerror.ErrCodeInvalidMemberRole, "invalid member role", domainerror.ErrInvalidMemberRole)
		}
		member.Role = *input.Role
	}
	member.UpdatedAt = time.Now().UTC()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeMemberSaveFailed, "failed to update member", err)
	}

	return &UpdateMemberOutput{Member: member}, nil
}
