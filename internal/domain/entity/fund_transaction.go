package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFund identifies one of the flat inflow/outflow funds. These
// funds have no member matrix; each is an independent chronological
// transaction stream.
type CashFund string

const (
	CashFundTreasury   CashFund = "treasury"
	CashFundWaste      CashFund = "waste"
	CashFundNightWatch CashFund = "night_watch"
)

// ValidCashFund reports whether f is a known cash fund.
func ValidCashFund(f CashFund) bool {
	switch f {
	case CashFundTreasury, CashFundWaste, CashFundNightWatch:
		return true
	}
	return false
}

// FlowType represents the direction of a fund transaction.
type FlowType string

const (
	FlowTypeInflow  FlowType = "inflow"
	FlowTypeOutflow FlowType = "outflow"
)

// ValidFlowType reports whether t is a known flow type.
func ValidFlowType(t FlowType) bool {
	return t == FlowTypeInflow || t == FlowTypeOutflow
}

// FundTransaction represents a single cash movement in one fund.
type FundTransaction struct {
	ID        uuid.UUID
	Fund      CashFund
	Type      FlowType
	Amount    decimal.Decimal
	Memo      string
	Date      string // ISO YYYY-MM-DD
	AdminID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFundTransaction creates a new FundTransaction entity.
func NewFundTransaction(fund CashFund, flowType FlowType, amount decimal.Decimal, memo, date string, adminID *uuid.UUID) *FundTransaction {
	now := time.Now().UTC()

	return &FundTransaction{
		ID:        uuid.New(),
		Fund:      fund,
		Type:      flowType,
		Amount:    amount,
		Memo:      memo,
		Date:      date,
		AdminID:   adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SignedAmount returns the transaction amount signed by flow direction:
// positive for inflow, negative for outflow.
func (t *FundTransaction) SignedAmount() decimal.Decimal {
	if t.Type == FlowTypeInflow {
		return t.Amount
	}
	return t.Amount.Neg()
}

// FundTransactionWithBalance annotates a transaction with the running
// balance as of that transaction within a chronologically ordered stream.
type FundTransactionWithBalance struct {
	Transaction    *FundTransaction
	RunningBalance decimal.Decimal
}

// FundSummary holds the aggregate totals of one cash fund.
type FundSummary struct {
	TotalInflow  decimal.Decimal
	TotalOutflow decimal.Decimal
	Balance      decimal.Decimal
}
