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

// SaveRecapItem is one payment mark in an upsert batch. A nil Amount
// falls back to the period's default amount.
type SaveRecapItem struct {
	MemberID uuid.UUID
	Date     string
	Status   entity.PaymentStatus
	Amount   *decimal.Decimal
}

// SaveRecapInput represents the input for saving a recap batch.
type SaveRecapInput struct {
	Fund     entity.LedgerFund
	PeriodID uuid.UUID
	AdminID  *uuid.UUID
	Items    []SaveRecapItem
}

// SaveRecapOutput represents the output of saving a recap batch.
type SaveRecapOutput struct {
	Saved int
}

// SaveRecapUseCase persists a batch of payment marks idempotently,
// keyed (fund, member, period, date), in one transaction.
type SaveRecapUseCase struct {
	periodRepo adapter.PeriodRepository
	memberRepo adapter.MemberRepository
	ledgerRepo adapter.LedgerRepository
}

// NewSaveRecapUseCase creates a new SaveRecapUseCase instance.
func NewSaveRecapUseCase(periodRepo adapter.PeriodRepository, memberRepo adapter.MemberRepository, ledgerRepo adapter.LedgerRepository) *SaveRecapUseCase {
	return &SaveRecapUseCase{
		periodRepo: periodRepo,
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Execute validates and persists the batch. Either every item lands or
// none does.
func (uc *SaveRecapUseCase) Execute(ctx context.Context, input SaveRecapInput) (*SaveRecapOutput, error) {
	if !entity.ValidLedgerFund(input.Fund) {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidLedgerFund, "unknown ledger fund", domainerror.ErrInvalidLedgerFund)
	}
	if len(input.Items) == 0 {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeEmptyUpsertBatch, "no items to save", domainerror.ErrEmptyUpsertBatch)
	}

	period, err := uc.periodRepo.FindByID(ctx, input.PeriodID)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeRecapPeriodNotFound, "period not found", domainerror.ErrPeriodNotFound)
	}

	entries := make([]*entity.LedgerEntry, 0, len(input.Items))
	for _, item := range input.Items {
		if !ValidISODate(item.Date) {
			return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidRecapDate, fmt.Sprintf("invalid date %q", item.Date), domainerror.ErrInvalidRecapDate)
		}
		if !entity.ValidPaymentStatus(item.Status) {
			return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidPaymentStatus, fmt.Sprintf("invalid status %q", item.Status), domainerror.ErrInvalidPaymentStatus)
		}
		exists, err := uc.memberRepo.ExistsByID(ctx, item.MemberID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domainerror.NewRecapError(domainerror.ErrCodeUnknownRecapMember, fmt.Sprintf("unknown member %s", item.MemberID), domainerror.ErrMemberNotFound)
		}

		entry := entity.LedgerEntry{
			ID:       uuid.New(),
			Fund:     input.Fund,
			MemberID: item.MemberID,
			PeriodID: input.PeriodID,
			Date:     item.Date,
			Amount:   ResolveAmount(item.Amount, period.DefaultAmount),
			Status:   item.Status,
			AdminID:  input.AdminID,
		}
		entries = append(entries, &entry)
	}

	if err := uc.ledgerRepo.UpsertBatch(ctx, entries); err != nil {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeUpsertBatchFailed, "failed to save recap batch", err)
	}

	return &SaveRecapOutput{Saved: len(entries)}, nil
}
