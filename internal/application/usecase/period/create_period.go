// Package period contains period lifecycle and arisan draw use cases.
package period

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// CreatePeriodInput represents the input for opening a collection period.
type CreatePeriodInput struct {
	Name          string
	StartDate     string
	EndDate       string
	DefaultAmount decimal.Decimal
	AdminID       *uuid.UUID
}

// CreatePeriodOutput represents the output of opening a collection period.
type CreatePeriodOutput struct {
	Period *entity.Period
}

// CreatePeriodUseCase opens a period and seeds its dependent rows:
// draw memberships for arisan members and an explicit unpaid ledger
// row per member so the new period starts fully materialized.
type CreatePeriodUseCase struct {
	periodRepo adapter.PeriodRepository
	memberRepo adapter.MemberRepository
}

// NewCreatePeriodUseCase creates a new CreatePeriodUseCase instance.
func NewCreatePeriodUseCase(periodRepo adapter.PeriodRepository, memberRepo adapter.MemberRepository) *CreatePeriodUseCase {
	return &CreatePeriodUseCase{
		periodRepo: periodRepo,
		memberRepo: memberRepo,
	}
}

// Execute validates the window, builds the seed rows and persists
// everything in one transaction.
func (uc *CreatePeriodUseCase) Execute(ctx context.Context, input CreatePeriodInput) (*CreatePeriodOutput, error) {
	if !recap.ValidISODate(input.StartDate) || !recap.ValidISODate(input.EndDate) {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodDate, "invalid period date, expected YYYY-MM-DD", domainerror.ErrInvalidPeriodDate)
	}
	if input.EndDate <= input.StartDate {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodRange, "period end date must be after start date", domainerror.ErrInvalidPeriodRange)
	}
	if input.DefaultAmount.IsNegative() {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodeInvalidPeriodRange, "default amount cannot be negative", nil)
	}

	existing, err := uc.periodRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodExists, "period already exists", domainerror.ErrPeriodExists)
	}

	members, err := uc.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	period := entity.NewPeriod(input.Name, input.StartDate, input.EndDate, input.DefaultAmount)
	seed := buildSeed(period, members, input.AdminID)

	if err := uc.periodRepo.CreateWithSeed(ctx, period, seed); err != nil {
		return nil, domainerror.NewPeriodError(domainerror.ErrCodePeriodSaveFailed, "failed to create period", err)
	}

	return &CreatePeriodOutput{Period: period}, nil
}

// buildSeed fans out the dependent rows for a fresh period. Every
// member gets a dues row dated at the period start; arisan members
// additionally get a draw membership and an arisan row. Kas-only
// members carry a zero dues seed so the recap shows them from day one.
func buildSeed(period *entity.Period, members []*entity.Member, adminID *uuid.UUID) *adapter.PeriodSeed {
	seed := &adapter.PeriodSeed{}
	for _, member := range members {
		duesAmount := decimal.Zero
		if member.Category == entity.MemberCategoryArisan {
			duesAmount = period.DefaultAmount
		}
		seed.Entries = append(seed.Entries, seedEntry(entity.LedgerFundDues, member.ID, period, duesAmount, adminID))

		if member.Category == entity.MemberCategoryArisan {
			seed.Memberships = append(seed.Memberships, &entity.PeriodMembership{
				ID:        uuid.New(),
				PeriodID:  period.ID,
				MemberID:  member.ID,
				Status:    entity.DrawStatusNotYetDrawn,
				CreatedAt: period.CreatedAt,
				UpdatedAt: period.CreatedAt,
			})
			seed.Entries = append(seed.Entries, seedEntry(entity.LedgerFundArisan, member.ID, period, period.DefaultAmount, adminID))
		}
	}
	return seed
}

func seedEntry(fund entity.LedgerFund, memberID uuid.UUID, period *entity.Period, amount decimal.Decimal, adminID *uuid.UUID) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:        uuid.New(),
		Fund:      fund,
		MemberID:  memberID,
		PeriodID:  period.ID,
		Date:      period.StartDate,
		Amount:    amount,
		Status:    entity.PaymentStatusUnpaid,
		AdminID:   adminID,
		CreatedAt: period.CreatedAt,
		UpdatedAt: period.CreatedAt,
	}
}
