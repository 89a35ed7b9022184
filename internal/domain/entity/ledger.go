package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerFund identifies which member-contribution fund a ledger entry
// belongs to. The two funds share one ledger keyed by
// (fund, member, period, date).
type LedgerFund string

const (
	LedgerFundArisan LedgerFund = "arisan"
	LedgerFundDues   LedgerFund = "dues"
)

// ValidLedgerFund reports whether f is a known ledger fund.
func ValidLedgerFund(f LedgerFund) bool {
	return f == LedgerFundArisan || f == LedgerFundDues
}

// PaymentStatus represents the payment state of a ledger entry.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

// LedgerEntry represents one member contribution record. The
// (fund, member, period, date) key is the idempotency anchor:
// re-submitting the same key updates the row instead of duplicating it.
type LedgerEntry struct {
	ID        uuid.UUID
	Fund      LedgerFund
	MemberID  uuid.UUID
	PeriodID  uuid.UUID
	Date      string // ISO YYYY-MM-DD, always on the period's lattice
	Amount    decimal.Decimal
	Status    PaymentStatus
	AdminID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MatrixRow is one row of the member x lattice-date matrix: a member
// joined against an optional ledger entry for one date. Status and
// Amount are nil where no ledger row matched.
type MatrixRow struct {
	MemberID uuid.UUID
	Name     string
	Unit     string
	Date     string
	Status   *PaymentStatus
	Amount   *decimal.Decimal
}

// DateCell is the per-date payment cell of an aggregated recap.
type DateCell struct {
	Status PaymentStatus
	Amount decimal.Decimal
}

// MemberRecap is one member's aggregated row: a total over the lattice
// and one cell per lattice date (absent ledger rows default to
// unpaid/0, so ByDate always covers the full lattice).
type MemberRecap struct {
	MemberID uuid.UUID
	Name     string
	Unit     string
	Total    decimal.Decimal
	ByDate   map[string]DateCell
}
