package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// MatrixFilter defines filter options for the member x date matrix query.
// AmountMin/AmountMax apply at the join stage: members whose joined rows
// all fall outside the bounds drop out of the matrix entirely.
type MatrixFilter struct {
	Fund      entity.LedgerFund
	PeriodID  *uuid.UUID // nil matches any period (year pseudo-window)
	Dates     []string   // lattice dates the join is restricted to
	Search    string     // Case-insensitive member name match
	Unit      string
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
	FromDate  string // inclusive, empty = unbounded
	ToDate    string // inclusive, empty = unbounded
}

// LedgerRepository defines the interface for contribution ledger
// persistence operations.
type LedgerRepository interface {
	// QueryMatrix left-joins members against ledger entries for the
	// given fund and lattice. One row per (member, matched entry); a
	// member with no matching entries still yields a single row with
	// nil Status/Amount unless a join-stage amount filter is set.
	// Rows are ordered by unit, then name, then date.
	QueryMatrix(ctx context.Context, filter MatrixFilter) ([]*entity.MatrixRow, error)

	// UpsertBatch writes all entries in one transaction, keyed
	// (fund, member, period, date). Existing keys are updated with the
	// new status, amount and admin; any failure rolls back the batch.
	UpsertBatch(ctx context.Context, entries []*entity.LedgerEntry) error

	// DistinctUnits lists the distinct units of all members, sorted.
	DistinctUnits(ctx context.Context) ([]string, error)

	// CreateEntries inserts seed entries; used by period creation inside
	// its own transaction scope.
	CreateEntries(ctx context.Context, entries []*entity.LedgerEntry) error
}
