package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

func seedRoster(t *testing.T, db interface {
	Create(ctx context.Context, member *entity.Member) error
}, names ...string) []*entity.Member {
	t.Helper()
	members := make([]*entity.Member, len(names))
	for i, name := range names {
		m := entity.NewMember(nil, name, "", "", "01", entity.MemberCategoryArisan)
		if err := db.Create(context.Background(), m); err != nil {
			t.Fatalf("failed to seed member %s: %v", name, err)
		}
		members[i] = m
	}
	return members
}

func TestUpsertBatchIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(db)
	memberRepo := NewMemberRepository(db)
	periodRepo := NewPeriodRepository(db)

	members := seedRoster(t, memberRepo, "Siti")
	period := entity.NewPeriod("Periode Juli", "2025-07-01", "2025-09-30", decimal.NewFromInt(50000))
	if err := periodRepo.CreateWithSeed(ctx, period, nil); err != nil {
		t.Fatalf("failed to create period: %v", err)
	}

	entry := &entity.LedgerEntry{
		ID:       uuid.New(),
		Fund:     entity.LedgerFundDues,
		MemberID: members[0].ID,
		PeriodID: period.ID,
		Date:     "2025-07-01",
		Amount:   decimal.NewFromInt(50000),
		Status:   entity.PaymentStatusPaid,
	}
	if err := ledgerRepo.UpsertBatch(ctx, []*entity.LedgerEntry{entry}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// Same key again with a different amount and status.
	updated := *entry
	updated.Amount = decimal.NewFromInt(75000)
	updated.Status = entity.PaymentStatusUnpaid
	if err := ledgerRepo.UpsertBatch(ctx, []*entity.LedgerEntry{&updated}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	rows, err := ledgerRepo.QueryMatrix(ctx, adapter.MatrixFilter{
		Fund:     entity.LedgerFundDues,
		PeriodID: &period.ID,
		Dates:    []string{"2025-07-01"},
	})
	if err != nil {
		t.Fatalf("QueryMatrix failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (no duplicate for the same key)", len(rows))
	}
	if rows[0].Amount == nil || !rows[0].Amount.Equal(decimal.NewFromInt(75000)) {
		t.Errorf("amount = %v, want updated 75000", rows[0].Amount)
	}
	if rows[0].Status == nil || *rows[0].Status != entity.PaymentStatusUnpaid {
		t.Errorf("status = %v, want updated unpaid", rows[0].Status)
	}
}

func TestUpsertBatchRollsBackAsAWhole(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(db)
	memberRepo := NewMemberRepository(db)
	periodRepo := NewPeriodRepository(db)

	members := seedRoster(t, memberRepo, "Siti")
	period := entity.NewPeriod("Periode Juli", "2025-07-01", "2025-09-30", decimal.NewFromInt(50000))
	if err := periodRepo.CreateWithSeed(ctx, period, nil); err != nil {
		t.Fatalf("failed to create period: %v", err)
	}

	sharedID := uuid.New()
	good := &entity.LedgerEntry{
		ID:       sharedID,
		Fund:     entity.LedgerFundDues,
		MemberID: members[0].ID,
		PeriodID: period.ID,
		Date:     "2025-07-01",
		Amount:   decimal.NewFromInt(50000),
		Status:   entity.PaymentStatusPaid,
	}
	// Same primary key under a different ledger key cannot be inserted
	// and must sink the whole batch.
	bad := &entity.LedgerEntry{
		ID:       sharedID,
		Fund:     entity.LedgerFundDues,
		MemberID: members[0].ID,
		PeriodID: period.ID,
		Date:     "2025-07-15",
		Amount:   decimal.NewFromInt(50000),
		Status:   entity.PaymentStatusPaid,
	}

	if err := ledgerRepo.UpsertBatch(ctx, []*entity.LedgerEntry{good, bad}); err == nil {
		t.Fatal("expected batch to fail")
	}

	rows, err := ledgerRepo.QueryMatrix(ctx, adapter.MatrixFilter{
		Fund:     entity.LedgerFundDues,
		PeriodID: &period.ID,
		Dates:    []string{"2025-07-01", "2025-07-15"},
	})
	if err != nil {
		t.Fatalf("QueryMatrix failed: %v", err)
	}
	for _, row := range rows {
		if row.Status != nil {
			t.Errorf("entry survived a failed batch: %+v", row)
		}
	}
}

func TestQueryMatrixKeepsEntrylessMembers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(db)
	memberRepo := NewMemberRepository(db)
	periodRepo := NewPeriodRepository(db)

	members := seedRoster(t, memberRepo, "Siti", "Budi")
	period := entity.NewPeriod("Periode Juli", "2025-07-01", "2025-09-30", decimal.NewFromInt(50000))
	if err := periodRepo.CreateWithSeed(ctx, period, nil); err != nil {
		t.Fatalf("failed to create period: %v", err)
	}

	entry := entity.LedgerEntry{
		ID:       uuid.New(),
		Fund:     entity.LedgerFundArisan,
		MemberID: members[0].ID,
		PeriodID: period.ID,
		Date:     "2025-07-01",
		Amount:   decimal.NewFromInt(50000),
		Status:   entity.PaymentStatusPaid,
	}
	if err := ledgerRepo.UpsertBatch(ctx, []*entity.LedgerEntry{&entry}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	rows, err := ledgerRepo.QueryMatrix(ctx, adapter.MatrixFilter{
		Fund:     entity.LedgerFundArisan,
		PeriodID: &period.ID,
		Dates:    []string{"2025-07-01", "2025-07-15"},
	})
	if err != nil {
		t.Fatalf("QueryMatrix failed: %v", err)
	}

	// Budi has no entries but must still appear with NULL columns.
	var sawBudi bool
	for _, row := range rows {
		if row.MemberID == members[1].ID {
			sawBudi = true
			if row.Status != nil || row.Amount != nil {
				t.Errorf("entry-less member carries data: %+v", row)
			}
		}
	}
	if !sawBudi {
		t.Error("member without entries dropped from the matrix")
	}

	// A row-stage amount filter drops that member entirely.
	min := decimal.NewFromInt(10000)
	filtered, err := ledgerRepo.QueryMatrix(ctx, adapter.MatrixFilter{
		Fund:      entity.LedgerFundArisan,
		PeriodID:  &period.ID,
		Dates:     []string{"2025-07-01", "2025-07-15"},
		AmountMin: &min,
	})
	if err != nil {
		t.Fatalf("QueryMatrix with amount filter failed: %v", err)
	}
	for _, row := range filtered {
		if row.MemberID == members[1].ID {
			t.Error("amount filter should drop members with no matching rows")
		}
	}
	if len(filtered) != 1 {
		t.Errorf("filtered matrix has %d rows, want 1", len(filtered))
	}
}

func TestQueryMatrixOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(db)
	memberRepo := NewMemberRepository(db)

	// Insert out of order across two units.
	for _, m := range []struct{ name, unit string }{
		{"Citra", "02"},
		{"Andi", "01"},
		{"Budi", "02"},
	} {
		member := entity.NewMember(nil, m.name, "", "", m.unit, entity.MemberCategoryKas)
		if err := memberRepo.Create(ctx, member); err != nil {
			t.Fatalf("failed to seed member: %v", err)
		}
	}

	rows, err := ledgerRepo.QueryMatrix(ctx, adapter.MatrixFilter{
		Fund:  entity.LedgerFundDues,
		Dates: []string{"2025-07-01"},
	})
	if err != nil {
		t.Fatalf("QueryMatrix failed: %v", err)
	}
	wantOrder := []string{"Andi", "Budi", "Citra"}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, want := range wantOrder {
		if rows[i].Name != want {
			t.Errorf("row %d = %s, want %s (unit then name)", i, rows[i].Name, want)
		}
	}
}

func TestDistinctUnits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ledgerRepo := NewLedgerRepository(db)
	memberRepo := NewMemberRepository(db)

	for _, unit := range []string{"03", "01", "03", "02"} {
		member := entity.NewMember(nil, "Warga "+unit, "", "", unit, entity.MemberCategoryKas)
		if err := memberRepo.Create(ctx, member); err != nil {
			t.Fatalf("failed to seed member: %v", err)
		}
	}

	units, err := ledgerRepo.DistinctUnits(ctx)
	if err != nil {
		t.Fatalf("DistinctUnits failed: %v", err)
	}
	want := []string{"01", "02", "03"}
	if len(units) != len(want) {
		t.Fatalf("units = %v, want %v", units, want)
	}
	for i := range want {
		if units[i] != want[i] {
			t.Errorf("units[%d] = %s, want %s", i, units[i], want[i])
		}
	}
}
