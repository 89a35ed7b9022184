package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// PeriodSeed describes the rows fanned out when a period is created:
// draw memberships for arisan members plus seed ledger entries so every
// member starts the period with an explicit unpaid row.
type PeriodSeed struct {
	Memberships []*entity.PeriodMembership
	Entries     []*entity.LedgerEntry
}

// PeriodRepository defines the interface for period persistence operations.
type PeriodRepository interface {
	// CreateWithSeed creates a period and its seed rows in one transaction.
	CreateWithSeed(ctx context.Context, period *entity.Period, seed *PeriodSeed) error

	// FindByID retrieves a period by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Period, error)

	// FindByName retrieves a period by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Period, error)

	// FindLatest retrieves the most recently started period.
	FindLatest(ctx context.Context) (*entity.Period, error)

	// FindAll retrieves all periods ordered by start date descending.
	FindAll(ctx context.Context) ([]*entity.Period, error)

	// Update updates an existing period in the database.
	Update(ctx context.Context, period *entity.Period) error

	// Delete removes a period together with its ledger entries and
	// memberships in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindMembership retrieves the draw membership of one member in one period.
	FindMembership(ctx context.Context, periodID, memberID uuid.UUID) (*entity.PeriodMembership, error)

	// FindMemberships retrieves the memberships of a period with their
	// members, optionally restricted to one draw status.
	FindMemberships(ctx context.Context, periodID uuid.UUID, status *entity.DrawStatus) ([]*entity.MembershipWithMember, error)

	// CreateMemberships inserts draw memberships, used when an arisan
	// member registers after periods already exist.
	CreateMemberships(ctx context.Context, memberships []*entity.PeriodMembership) error

	// UpdateMembership updates an existing membership row.
	UpdateMembership(ctx context.Context, membership *entity.PeriodMembership) error
}
