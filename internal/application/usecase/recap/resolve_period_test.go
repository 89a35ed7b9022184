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

func TestResolvePeriodExplicitID(t *testing.T) {
	period := entity.NewPeriod("Periode Juli", "2025-07-01", "2025-09-30", decimal.NewFromInt(50000))
	repo := &fakePeriodRepo{periods: map[uuid.UUID]*entity.Period{period.ID: period}}
	uc := NewResolvePeriodUseCase(repo)

	got, err := uc.Execute(context.Background(), ResolvePeriodInput{PeriodID: &period.ID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.ID == nil || *got.ID != period.ID {
		t.Errorf("resolved ID = %v, want %s", got.ID, period.ID)
	}
	if got.Name != "Periode Juli" || got.StartDate != "2025-07-01" || got.EndDate != "2025-09-30" {
		t.Errorf("unexpected resolved window: %+v", got)
	}
	if !got.DefaultAmount.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("DefaultAmount = %s, want 50000", got.DefaultAmount)
	}
}

func TestResolvePeriodUnknownID(t *testing.T) {
	repo := &fakePeriodRepo{periods: map[uuid.UUID]*entity.Period{}}
	uc := NewResolvePeriodUseCase(repo)

	unknown := uuid.New()
	_, err := uc.Execute(context.Background(), ResolvePeriodInput{PeriodID: &unknown})
	if !errors.Is(err, domainerror.ErrPeriodNotFound) {
		t.Errorf("expected ErrPeriodNotFound, got %v", err)
	}
}

func TestResolvePeriodYearWindow(t *testing.T) {
	uc := NewResolvePeriodUseCase(&fakePeriodRepo{})

	year := 2024
	got, err := uc.Execute(context.Background(), ResolvePeriodInput{Year: &year})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.ID != nil {
		t.Errorf("year window should have nil ID, got %v", got.ID)
	}
	if got.Name != "Tahun 2024" {
		t.Errorf("Name = %q, want %q", got.Name, "Tahun 2024")
	}
	if got.StartDate != "2024-01-01" || got.EndDate != "2024-12-31" {
		t.Errorf("window = %s..%s, want 2024-01-01..2024-12-31", got.StartDate, got.EndDate)
	}
	if !got.DefaultAmount.IsZero() {
		t.Errorf("year window default amount = %s, want 0", got.DefaultAmount)
	}
}

func TestResolvePeriodFallsBackToLatest(t *testing.T) {
	latest := entity.NewPeriod("Periode Oktober", "2025-10-01", "2025-12-31", decimal.NewFromInt(60000))
	uc := NewResolvePeriodUseCase(&fakePeriodRepo{latest: latest})

	got, err := uc.Execute(context.Background(), ResolvePeriodInput{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.ID == nil || *got.ID != latest.ID {
		t.Errorf("resolved ID = %v, want latest period %s", got.ID, latest.ID)
	}
}

func TestResolvePeriodNoneAvailable(t *testing.T) {
	uc := NewResolvePeriodUseCase(&fakePeriodRepo{})

	_, err := uc.Execute(context.Background(), ResolvePeriodInput{})
	if !errors.Is(err, domainerror.ErrNoPeriodAvailable) {
		t.Errorf("expected ErrNoPeriodAvailable, got %v", err)
	}

	var recapErr *domainerror.RecapError
	if !errors.As(err, &recapErr) || recapErr.Code != domainerror.ErrCodeNoPeriodAvailable {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeNoPeriodAvailable, err)
	}
}
