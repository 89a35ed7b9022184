package member

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// defaultMemberPerPage is the roster page size when none is requested.
const defaultMemberPerPage = 10

// ListMembersInput represents the input for listing the roster.
type ListMembersInput struct {
	Unit    string
	Role    *entity.MemberRole
	Search  string
	Page    int
	PerPage int
}

// ListMembersOutput represents the output of listing the roster.
type ListMembersOutput struct {
	Result *entity.MemberListResult
}

// ListMembersUseCase lists members with their paid dues total for the
// most recently started period.
type ListMembersUseCase struct {
	memberRepo adapter.MemberRepository
	periodRepo adapter.PeriodRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(memberRepo adapter.MemberRepository, periodRepo adapter.PeriodRepository) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo: memberRepo,
		periodRepo: periodRepo,
	}
}

// Execute lists the roster page.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	if input.Role != nil && !entity.ValidMemberRole(*input.Role) {
		return nil, domainerror.NewMemberError(domainerror.ErrCodeInvalidMemberRole, "invalid member role", domainerror.ErrInvalidMemberRole)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultMemberPerPage
	}

	// Dues totals are scoped to the latest period; none existing yet
	// simply yields zero totals.
	var duesPeriodID *uuid.UUID
	latest, err := uc.periodRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		duesPeriodID = &latest.ID
	}

	result, err := uc.memberRepo.FindByFilter(ctx, adapter.MemberFilter{
		Unit:   input.Unit,
		Role:   input.Role,
		Search: input.Search,
	}, adapter.MemberPagination{
		Page:    page,
		PerPage: perPage,
	}, duesPeriodID)
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{Result: result}, nil
}
