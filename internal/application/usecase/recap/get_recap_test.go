package recap

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

func paid(amount int64) (*entity.PaymentStatus, *decimal.Decimal) {
	s := entity.PaymentStatusPaid
	a := decimal.NewFromInt(amount)
	return &s, &a
}

// newRecapFixture builds a one-period world with members A and B. A
// paid the default 50000 on the first two lattice dates, B paid only
// the first.
func newRecapFixture() (*GetRecapUseCase, *fakeLedgerRepo, *entity.Period, uuid.UUID, uuid.UUID) {
	period := entity.NewPeriod("Periode Awal 2025", "2025-01-01", "2025-01-29", decimal.NewFromInt(50000))
	periodRepo := &fakePeriodRepo{
		periods: map[uuid.UUID]*entity.Period{period.ID: period},
		latest:  period,
	}

	memberA := uuid.New()
	memberB := uuid.New()

	statusA1, amountA1 := paid(50000)
	statusA2, amountA2 := paid(50000)
	statusB1, amountB1 := paid(50000)

	ledgerRepo := &fakeLedgerRepo{
		rows: []*entity.MatrixRow{
			{MemberID: memberA, Name: "Member A", Unit: "01", Date: "2025-01-01", Status: statusA1, Amount: amountA1},
			{MemberID: memberA, Name: "Member A", Unit: "01", Date: "2025-01-15", Status: statusA2, Amount: amountA2},
			{MemberID: memberB, Name: "Member B", Unit: "02", Date: "2025-01-01", Status: statusB1, Amount: amountB1},
		},
		units: []string{"01", "02"},
	}

	uc := NewGetRecapUseCase(NewResolvePeriodUseCase(periodRepo), ledgerRepo)
	return uc, ledgerRepo, period, memberA, memberB
}

func TestGetRecapAggregatesMemberTotals(t *testing.T) {
	uc, _, period, memberA, memberB := newRecapFixture()

	out, err := uc.Execute(context.Background(), GetRecapInput{
		Fund:     entity.LedgerFundDues,
		PeriodID: &period.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	wantDates := []string{"2025-01-01", "2025-01-15", "2025-01-29"}
	if len(out.Dates) != 3 {
		t.Fatalf("lattice = %v, want %v", out.Dates, wantDates)
	}
	for i, d := range wantDates {
		if out.Dates[i] != d {
			t.Errorf("Dates[%d] = %s, want %s", i, out.Dates[i], d)
		}
	}

	if len(out.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(out.Members))
	}

	a := out.Members[0]
	if a.MemberID != memberA {
		t.Fatalf("first member = %s, want A (%s)", a.MemberID, memberA)
	}
	if !a.Total.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("A total = %s, want 100000", a.Total)
	}
	if cell := a.ByDate["2025-01-29"]; cell.Status != entity.PaymentStatusUnpaid || !cell.Amount.IsZero() {
		t.Errorf("A missing date cell = %+v, want unpaid/0", cell)
	}

	b := out.Members[1]
	if b.MemberID != memberB {
		t.Fatalf("second member = %s, want B (%s)", b.MemberID, memberB)
	}
	if !b.Total.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("B total = %s, want 50000", b.Total)
	}
	for _, date := range []string{"2025-01-15", "2025-01-29"} {
		if cell := b.ByDate[date]; cell.Status != entity.PaymentStatusUnpaid || !cell.Amount.IsZero() {
			t.Errorf("B cell %s = %+v, want unpaid/0", date, cell)
		}
	}

	if !out.GrandTotal.Equal(decimal.NewFromInt(150000)) {
		t.Errorf("GrandTotal = %s, want 150000", out.GrandTotal)
	}
	if len(out.Units) != 2 {
		t.Errorf("Units = %v, want [01 02]", out.Units)
	}
}

func TestGetRecapMatrixCompleteness(t *testing.T) {
	uc, _, period, _, _ := newRecapFixture()

	out, err := uc.Execute(context.Background(), GetRecapInput{
		Fund:     entity.LedgerFundArisan,
		PeriodID: &period.ID,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, m := range out.Members {
		if len(m.ByDate) != len(out.Dates) {
			t.Errorf("member %s has %d cells, want %d", m.Name, len(m.ByDate), len(out.Dates))
		}
		for _, date := range out.Dates {
			if _, ok := m.ByDate[date]; !ok {
				t.Errorf("member %s missing cell for %s", m.Name, date)
			}
		}
	}
}

func TestGetRecapTotalFilter(t *testing.T) {
	uc, _, period, memberA, _ := newRecapFixture()

	min := decimal.NewFromInt(80000)
	out, err := uc.Execute(context.Background(), GetRecapInput{
		Fund:           entity.LedgerFundDues,
		PeriodID:       &period.ID,
		TotalAmountMin: &min,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Members) != 1 || out.Members[0].MemberID != memberA {
		t.Fatalf("total filter kept %d members, want only A", len(out.Members))
	}
	if !out.GrandTotal.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("GrandTotal over filtered set = %s, want 100000", out.GrandTotal)
	}
}

func TestGetRecapPagination(t *testing.T) {
	period := entity.NewPeriod("Periode Besar", "2025-01-01", "2025-01-29", decimal.NewFromInt(50000))
	periodRepo := &fakePeriodRepo{periods: map[uuid.UUID]*entity.Period{period.ID: period}}

	var rows []*entity.MatrixRow
	for i := 0; i < 25; i++ {
		status, amount := paid(50000)
		rows = append(rows, &entity.MatrixRow{
			MemberID: uuid.New(),
			Name:     string(rune('A' + i)),
			Unit:     "01",
			Date:     "2025-01-01",
			Status:   status,
			Amount:   amount,
		})
	}
	ledgerRepo := &fakeLedgerRepo{rows: rows, units: []string{"01"}}
	uc := NewGetRecapUseCase(NewResolvePeriodUseCase(periodRepo), ledgerRepo)

	out, err := uc.Execute(context.Background(), GetRecapInput{
		Fund:     entity.LedgerFundDues,
		PeriodID: &period.ID,
		Page:     3,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Pagination.PerPage != 10 {
		t.Errorf("default PerPage = %d, want 10", out.Pagination.PerPage)
	}
	if out.Pagination.Total != 25 || out.Pagination.LastPage != 3 {
		t.Errorf("pagination = %+v, want total 25 lastPage 3", out.Pagination)
	}
	if len(out.Members) != 5 {
		t.Errorf("page 3 has %d members, want 5", len(out.Members))
	}
}

func TestGetRecapRejectsUnknownFund(t *testing.T) {
	uc, _, period, _, _ := newRecapFixture()

	_, err := uc.Execute(context.Background(), GetRecapInput{
		Fund:     entity.LedgerFund("sampah"),
		PeriodID: &period.ID,
	})
	if err == nil {
		t.Fatal("expected error for unknown ledger fund")
	}
}

func TestGetRecapPassesRowFiltersToMatrix(t *testing.T) {
	uc, ledgerRepo, period, _, _ := newRecapFixture()

	min := decimal.NewFromInt(10000)
	_, err := uc.Execute(context.Background(), GetRecapInput{
		Fund:         entity.LedgerFundArisan,
		PeriodID:     &period.ID,
		Search:       "Budi",
		Unit:         "03",
		FromDate:     "2025-01-15",
		ToDate:       "2025-01-29",
		RowAmountMin: &min,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	f := ledgerRepo.lastFilter
	if f.Fund != entity.LedgerFundArisan || f.Search != "Budi" || f.Unit != "03" {
		t.Errorf("matrix filter = %+v, want fund/search/unit propagated", f)
	}
	if f.FromDate != "2025-01-15" || f.ToDate != "2025-01-29" {
		t.Errorf("matrix date range = %s..%s, want 2025-01-15..2025-01-29", f.FromDate, f.ToDate)
	}
	if f.AmountMin == nil || !f.AmountMin.Equal(min) {
		t.Errorf("row amount min not propagated: %+v", f.AmountMin)
	}
	if len(f.Dates) != 3 {
		t.Errorf("lattice anchor moved: %v, want 3 dates from period start", f.Dates)
	}
}
