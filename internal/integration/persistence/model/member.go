package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// MemberModel represents the members table in the database.
type MemberModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AdminID   *uuid.UUID `gorm:"type:uuid;index"`
	Name      string     `gorm:"type:varchar(255);not null;index"`
	Address   string     `gorm:"type:varchar(255)"`
	BirthDate string     `gorm:"type:varchar(10)"`
	Unit      string     `gorm:"type:varchar(8);not null;index"`
	Category  string     `gorm:"type:varchar(16);not null"`
	Role      string     `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the MemberModel.
func (MemberModel) TableName() string {
	return "members"
}

// ToEntity converts a MemberModel to a domain Member entity.
func (m *MemberModel) ToEntity() *entity.Member {
	return &entity.Member{
		ID:        m.ID,
		AdminID:   m.AdminID,
		Name:      m.Name,
		Address:   m.Address,
		BirthDate: m.BirthDate,
		Unit:      m.Unit,
		Category:  entity.MemberCategory(m.Category),
		Role:      entity.MemberRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MemberFromEntity creates a MemberModel from a domain Member entity.
func MemberFromEntity(member *entity.Member) *MemberModel {
	return &MemberModel{
		ID:        member.ID,
		AdminID:   member.AdminID,
		Name:      member.Name,
		Address:   member.Address,
		BirthDate: member.BirthDate,
		Unit:      member.Unit,
		Category:  string(member.Category),
		Role:      string(member.Role),
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
