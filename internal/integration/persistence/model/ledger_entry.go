package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
// The (fund, member, period, date) key backs the idempotent upsert.
type LedgerEntryModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fund      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_ledger_key"`
	MemberID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_key"`
	PeriodID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_ledger_key;index"`
	Date      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_ledger_key"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status    string          `gorm:"type:varchar(10);not null"`
	AdminID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:        m.ID,
		Fund:      entity.LedgerFund(m.Fund),
		MemberID:  m.MemberID,
		PeriodID:  m.PeriodID,
		Date:      m.Date,
		Amount:    m.Amount,
		Status:    entity.PaymentStatus(m.Status),
		AdminID:   m.AdminID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain
// LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:        entry.ID,
		Fund:      string(entry.Fund),
		MemberID:  entry.MemberID,
		PeriodID:  entry.PeriodID,
		Date:      entry.Date,
		Amount:    entry.Amount,
		Status:    string(entry.Status),
		AdminID:   entry.AdminID,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
