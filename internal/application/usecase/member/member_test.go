package member

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

var errNotImplemented = errors.New("not implemented in fake")

type fakeMemberRepo struct {
	members map[uuid.UUID]*entity.Member
	deleted []uuid.UUID
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uuid.UUID]*entity.Member)}
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *entity.Member) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	return f.members[id], nil
}

func (f *fakeMemberRepo) FindByFilter(ctx context.Context, filter adapter.MemberFilter, pagination adapter.MemberPagination, duesPeriodID *uuid.UUID) (*entity.MemberListResult, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) FindByCategory(ctx context.Context, category entity.MemberCategory) ([]*entity.Member, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) FindAll(ctx context.Context) ([]*entity.Member, error) {
	return nil, errNotImplemented
}

func (f *fakeMemberRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.members[id] != nil, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, member *entity.Member) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.members, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePeriodRepo struct {
	periods     []*entity.Period
	memberships []*entity.PeriodMembership
}

func (f *fakePeriodRepo) CreateWithSeed(ctx context.Context, period *entity.Period, seed *adapter.PeriodSeed) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) FindByName(ctx context.Context, name string) (*entity.Period, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) FindLatest(ctx context.Context) (*entity.Period, error) {
	if len(f.periods) == 0 {
		return nil, nil
	}
	return f.periods[0], nil
}

func (f *fakePeriodRepo) FindAll(ctx context.Context) ([]*entity.Period, error) {
	return f.periods, nil
}

func (f *fakePeriodRepo) Update(ctx context.Context, period *entity.Period) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}

func (f *fakePeriodRepo) FindMembership(ctx context.Context, periodID, memberID uuid.UUID) (*entity.PeriodMembership, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) FindMemberships(ctx context.Context, periodID uuid.UUID, status *entity.DrawStatus) ([]*entity.MembershipWithMember, error) {
	return nil, errNotImplemented
}

func (f *fakePeriodRepo) CreateMemberships(ctx context.Context, memberships []*entity.PeriodMembership) error {
	f.memberships = append(f.memberships, memberships...)
	return nil
}

func (f *fakePeriodRepo) UpdateMembership(ctx context.Context, membership *entity.PeriodMembership) error {
	return errNotImplemented
}

func TestCreateMemberBackfillsArisanMemberships(t *testing.T) {
	periodRepo := &fakePeriodRepo{periods: []*entity.Period{
		entity.NewPeriod("Periode Juli", "2025-07-01", "2025-09-30", decimal.NewFromInt(50000)),
		entity.NewPeriod("Periode April", "2025-04-01", "2025-06-30", decimal.NewFromInt(50000)),
	}}
	uc := NewCreateMemberUseCase(newFakeMemberRepo(), periodRepo)

	out, err := uc.Execute(context.Background(), CreateMemberInput{
		Name:     "Siti Rahayu",
		Unit:     "03",
		Category: entity.MemberCategoryArisan,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(periodRepo.memberships) != 2 {
		t.Fatalf("backfilled %d memberships, want 2", len(periodRepo.memberships))
	}
	for _, m := range periodRepo.memberships {
		if m.MemberID != out.Member.ID || m.Status != entity.DrawStatusNotYetDrawn {
			t.Errorf("backfilled membership malformed: %+v", m)
		}
	}
}

func TestCreateMemberKasOnlySkipsBackfill(t *testing.T) {
	periodRepo := &fakePeriodRepo{periods: []*entity.Period{
		entity.NewPeriod("Periode Juli", "2025-07-01", "2025-09-30", decimal.NewFromInt(50000)),
	}}
	uc := NewCreateMemberUseCase(newFakeMemberRepo(), periodRepo)

	out, err := uc.Execute(context.Background(), CreateMemberInput{
		Name:     "Budi Santoso",
		Unit:     "02",
		Category: entity.MemberCategoryKas,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Member.Role != entity.MemberRoleResident {
		t.Errorf("default role = %s, want resident", out.Member.Role)
	}
	if len(periodRepo.memberships) != 0 {
		t.Errorf("kas-only member should not be enrolled in draws, got %d memberships", len(periodRepo.memberships))
	}
}

func TestCreateMemberValidation(t *testing.T) {
	uc := NewCreateMemberUseCase(newFakeMemberRepo(), &fakePeriodRepo{})

	badRole := entity.MemberRole("penasehat")
	tests := []struct {
		name     string
		input    CreateMemberInput
		wantCode domainerror.MemberErrorCode
	}{
		{
			name:     "blank name",
			input:    CreateMemberInput{Name: "   ", Category: entity.MemberCategoryKas},
			wantCode: domainerror.ErrCodeMemberNameRequired,
		},
		{
			name:     "unknown category",
			input:    CreateMemberInput{Name: "Budi", Category: entity.MemberCategory("tamu")},
			wantCode: domainerror.ErrCodeInvalidMemberCategory,
		},
		{
			name:     "unknown role",
			input:    CreateMemberInput{Name: "Budi", Category: entity.MemberCategoryKas, Role: &badRole},
			wantCode: domainerror.ErrCodeInvalidMemberRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var memberErr *domainerror.MemberError
			if !errors.As(err, &memberErr) {
				t.Fatalf("expected MemberError, got %v", err)
			}
			if memberErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", memberErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUpdateMemberNotFound(t *testing.T) {
	uc := NewUpdateMemberUseCase(newFakeMemberRepo())

	_, err := uc.Execute(context.Background(), UpdateMemberInput{ID: uuid.New()})
	if !errors.Is(err, domainerror.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestDeleteMember(t *testing.T) {
	repo := newFakeMemberRepo()
	m := entity.NewMember(nil, "Budi", "", "", "01", entity.MemberCategoryKas)
	repo.members[m.ID] = m
	uc := NewDeleteMemberUseCase(repo)

	if err := uc.Execute(context.Background(), m.ID); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != m.ID {
		t.Errorf("member not deleted: %v", repo.deleted)
	}

	if err := uc.Execute(context.Background(), m.ID); !errors.Is(err, domainerror.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound on second delete, got %v", err)
	}
}
