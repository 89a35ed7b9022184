// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberCategory distinguishes dues-only members from arisan participants.
type MemberCategory string

const (
	MemberCategoryKas    MemberCategory = "kas"
	MemberCategoryArisan MemberCategory = "arisan"
)

// MemberRole represents the role a member holds in the association.
type MemberRole string

const (
	MemberRoleChair     MemberRole = "chair"
	MemberRoleViceChair MemberRole = "vice_chair"
	MemberRoleSecretary MemberRole = "secretary"
	MemberRoleTreasurer MemberRole = "treasurer"
	MemberRoleResident  MemberRole = "resident"
)

// ValidMemberRole reports whether r is a known role.
func ValidMemberRole(r MemberRole) bool {
	switch r {
	case MemberRoleChair, MemberRoleViceChair, MemberRoleSecretary, MemberRoleTreasurer, MemberRoleResident:
		return true
	}
	return false
}

// Member represents a registered resident of the neighborhood association.
type Member struct {
	ID        uuid.UUID
	AdminID   *uuid.UUID
	Name      string
	Address   string
	BirthDate string // ISO YYYY-MM-DD
	Unit      string // RT identifier
	Category  MemberCategory
	Role      MemberRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMember creates a new Member entity.
func NewMember(adminID *uuid.UUID, name, address, birthDate, unit string, category MemberCategory) *Member {
	now := time.Now().UTC()

	return &Member{
		ID:        uuid.New(),
		AdminID:   adminID,
		Name:      name,
		Address:   address,
		BirthDate: birthDate,
		Unit:      unit,
		Category:  category,
		Role:      MemberRoleResident,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MemberWithDues pairs a member with the sum of its paid dues
// for the latest period.
type MemberWithDues struct {
	Member    *Member
	DuesTotal decimal.Decimal
}

// MemberListResult represents the result of listing members.
type MemberListResult struct {
	Members  []*MemberWithDues
	Total    int64
	Page     int
	PerPage  int
	LastPage int
}
