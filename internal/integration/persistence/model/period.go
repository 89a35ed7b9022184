package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// PeriodModel represents the periods table in the database.
type PeriodModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	StartDate     string          `gorm:"type:varchar(10);not null;index"`
	EndDate       string          `gorm:"type:varchar(10);not null"`
	DefaultAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PeriodModel.
func (PeriodModel) TableName() string {
	return "periods"
}

// ToEntity converts a PeriodModel to a domain Period entity.
func (m *PeriodModel) ToEntity() *entity.Period {
	return &entity.Period{
		ID:            m.ID,
		Name:          m.Name,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		DefaultAmount: m.DefaultAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PeriodFromEntity creates a PeriodModel from a domain Period entity.
func PeriodFromEntity(period *entity.Period) *PeriodModel {
	return &PeriodModel{
		ID:            period.ID,
		Name:          period.Name,
		StartDate:     period.StartDate,
		EndDate:       period.EndDate,
		DefaultAmount: period.DefaultAmount,
		CreatedAt:     period.CreatedAt,
		UpdatedAt:     period.UpdatedAt,
	}
}

// PeriodMembershipModel represents the period_memberships table in the
// database. The (period, member) pair is unique.
type PeriodMembershipModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PeriodID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_period_member"`
	MemberID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_period_member"`
	Status    string     `gorm:"type:varchar(20);not null"`
	DrawnAt   *time.Time `gorm:"type:timestamp"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	Member *MemberModel `gorm:"foreignKey:MemberID;references:ID"`
}

// TableName returns the table name for the PeriodMembershipModel.
func (PeriodMembershipModel) TableName() string {
	return "period_memberships"
}

// ToEntity converts a PeriodMembershipModel to a domain PeriodMembership entity.
func (m *PeriodMembershipModel) ToEntity() *entity.PeriodMembership {
	return &entity.PeriodMembership{
		ID:        m.ID,
		PeriodID:  m.PeriodID,
		MemberID:  m.MemberID,
		Status:    entity.DrawStatus(m.Status),
		DrawnAt:   m.DrawnAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PeriodMembershipFromEntity creates a PeriodMembershipModel from a
// domain PeriodMembership entity.
func PeriodMembershipFromEntity(membership *entity.PeriodMembership) *PeriodMembershipModel {
	return &PeriodMembershipModel{
		ID:        membership.ID,
		PeriodID:  membership.PeriodID,
		MemberID:  membership.MemberID,
		Status:    string(membership.Status),
		DrawnAt:   membership.DrawnAt,
		CreatedAt: membership.CreatedAt,
		UpdatedAt: membership.UpdatedAt,
	}
}
