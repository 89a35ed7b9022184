package recap

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

func newSaveFixture() (*SaveRecapUseCase, *fakeLedgerRepo, *entity.Period, uuid.UUID) {
	period := entity.NewPeriod("Periode Awal 2025", "2025-01-01", "2025-01-29", decimal.NewFromInt(50000))
	periodRepo := &fakePeriodRepo{periods: map[uuid.UUID]*entity.Period{period.ID: period}}

	member := uuid.New()
	memberRepo := &fakeMemberRepo{existing: map[uuid.UUID]bool{member: true}}

	ledgerRepo := &fakeLedgerRepo{}
	uc := NewSaveRecapUseCase(periodRepo, memberRepo, ledgerRepo)
	return uc, ledgerRepo, period, member
}

func TestSaveRecapDefaultAmountSubstitution(t *testing.T) {
	uc, ledgerRepo, period, member := newSaveFixture()

	explicit := decimal.NewFromInt(75000)
	out, err := uc.Execute(context.Background(), SaveRecapInput{
		Fund:     entity.LedgerFundDues,
		PeriodID: period.ID,
		Items: []SaveRecapItem{
			{MemberID: member, Date: "2025-01-01", Status: entity.PaymentStatusPaid},
			{MemberID: member, Date: "2025-01-15", Status: entity.PaymentStatusPaid, Amount: &explicit},
		},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Saved != 2 {
		t.Errorf("Saved = %d, want 2", out.Saved)
	}
	if len(ledgerRepo.upserted) != 2 {
		t.Fatalf("upserted %d entries, want 2", len(ledgerRepo.upserted))
	}
	if !ledgerRepo.upserted[0].Amount.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("omitted amount = %s, want period default 50000", ledgerRepo.upserted[0].Amount)
	}
	if !ledgerRepo.upserted[1].Amount.Equal(explicit) {
		t.Errorf("explicit amount = %s, want 75000", ledgerRepo.upserted[1].Amount)
	}
	for _, e := range ledgerRepo.upserted {
		if e.Fund != entity.LedgerFundDues || e.PeriodID != period.ID {
			t.Errorf("entry carries wrong key: %+v", e)
		}
	}
}

func TestSaveRecapValidation(t *testing.T) {
	uc, _, period, member := newSaveFixture()

	tests := []struct {
		name     string
		input    SaveRecapInput
		wantCode domainerror.RecapErrorCode
	}{
		{
			name: "unknown fund",
			input: SaveRecapInput{
				Fund:     entity.LedgerFund("jimpitan"),
				PeriodID: period.ID,
				Items:    []SaveRecapItem{{MemberID: member, Date: "2025-01-01", Status: entity.PaymentStatusPaid}},
			},
			wantCode: domainerror.ErrCodeInvalidLedgerFund,
		},
		{
			name: "empty batch",
			input: SaveRecapInput{
				Fund:     entity.LedgerFundDues,
				PeriodID: period.ID,
			},
			wantCode: domainerror.ErrCodeEmptyUpsertBatch,
		},
		{
			name: "unknown period",
			input: SaveRecapInput{
				Fund:     entity.LedgerFundDues,
				PeriodID: uuid.New(),
				Items:    []SaveRecapItem{{MemberID: member, Date: "2025-01-01", Status: entity.PaymentStatusPaid}},
			},
			wantCode: domainerror.ErrCodeRecapPeriodNotFound,
		},
		{
			name: "malformed date",
			input: SaveRecapInput{
				Fund:     entity.LedgerFundDues,
				PeriodID: period.ID,
				Items:    []SaveRecapItem{{MemberID: member, Date: "15/01/2025", Status: entity.PaymentStatusPaid}},
			},
			wantCode: domainerror.ErrCodeInvalidRecapDate,
		},
		{
			name: "invalid status",
			input: SaveRecapInput{
				Fund:     entity.LedgerFundDues,
				PeriodID: period.ID,
				Items:    []SaveRecapItem{{MemberID: member, Date: "2025-01-01", Status: entity.PaymentStatus("pending")}},
			},
			wantCode: domainerror.ErrCodeInvalidPaymentStatus,
		},
		{
			name: "unknown member",
			input: SaveRecapInput{
				Fund:     entity.LedgerFundDues,
				PeriodID: period.ID,
				Items:    []SaveRecapItem{{MemberID: uuid.New(), Date: "2025-01-01", Status: entity.PaymentStatusPaid}},
			},
			wantCode: domainerror.ErrCodeUnknownRecapMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var recapErr *domainerror.RecapError
			if !errors.As(err, &recapErr) {
				t.Fatalf("expected RecapError, got %v", err)
			}
			if recapErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", recapErr.Code, tt.wantCode)
			}
		})
	}
}

func TestSaveRecapWrapsPersistenceFailure(t *testing.T) {
	uc, ledgerRepo, period, member := newSaveFixture()
	cause := errors.New("deadlock detected")
	ledgerRepo.upsertErr = cause

	_, err := uc.Execute(context.Background(), SaveRecapInput{
		Fund:     entity.LedgerFundArisan,
		PeriodID: period.ID,
		Items:    []SaveRecapItem{{MemberID: member, Date: "2025-01-01", Status: entity.PaymentStatusPaid}},
	})

	var recapErr *domainerror.RecapError
	if !errors.As(err, &recapErr) || recapErr.Code != domainerror.ErrCodeUpsertBatchFailed {
		t.Fatalf("expected upsert failure code, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("persistence cause not preserved in error chain")
	}
	if len(ledgerRepo.upserted) != 0 {
		t.Error("no entries should be recorded after a failed batch")
	}
}
