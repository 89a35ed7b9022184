package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// FundTransactionModel represents the fund_transactions table in the database.
type FundTransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fund      string          `gorm:"type:varchar(16);not null;index"`
	Type      string          `gorm:"type:varchar(10);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Memo      string          `gorm:"type:varchar(255)"`
	Date      string          `gorm:"type:varchar(10);not null;index"`
	AdminID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FundTransactionModel.
func (FundTransactionModel) TableName() string {
	return "fund_transactions"
}

// ToEntity converts a FundTransactionModel to a domain FundTransaction entity.
func (m *FundTransactionModel) ToEntity() *entity.FundTransaction {
	return &entity.FundTransaction{
		ID:        m.ID,
		Fund:      entity.CashFund(m.Fund),
		Type:      entity.FlowType(m.Type),
		Amount:    m.Amount,
		Memo:      m.Memo,
		Date:      m.Date,
		AdminID:   m.AdminID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FundTransactionFromEntity creates a FundTransactionModel from a
// domain FundTransaction entity.
func FundTransactionFromEntity(transaction *entity.FundTransaction) *FundTransactionModel {
	return &FundTransactionModel{
		ID:        transaction.ID,
		Fund:      string(transaction.Fund),
		Type:      string(transaction.Type),
		Amount:    transaction.Amount,
		Memo:      transaction.Memo,
		Date:      transaction.Date,
		AdminID:   transaction.AdminID,
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}
