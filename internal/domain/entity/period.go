package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DrawStatus tracks a member's rotating-savings draw state within a period.
type DrawStatus string

const (
	DrawStatusNotParticipating DrawStatus = "not_participating"
	DrawStatusNotYetDrawn      DrawStatus = "not_yet_drawn"
	DrawStatusDrawn            DrawStatus = "drawn"
)

// Period represents an administrative collection window.
type Period struct {
	ID            uuid.UUID
	Name          string
	StartDate     string // ISO YYYY-MM-DD
	EndDate       string // ISO YYYY-MM-DD, strictly after StartDate
	DefaultAmount decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPeriod creates a new Period entity.
func NewPeriod(name, startDate, endDate string, defaultAmount decimal.Decimal) *Period {
	now := time.Now().UTC()

	return &Period{
		ID:            uuid.New(),
		Name:          name,
		StartDate:     startDate,
		EndDate:       endDate,
		DefaultAmount: defaultAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PeriodMembership records a member's participation in a period's
// rotating-savings draw. The (period, member) pair is unique and the
// draw status only ever moves not_yet_drawn -> drawn.
type PeriodMembership struct {
	ID        uuid.UUID
	PeriodID  uuid.UUID
	MemberID  uuid.UUID
	Status    DrawStatus
	DrawnAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipWithMember pairs a membership with its member for listings.
type MembershipWithMember struct {
	Membership *PeriodMembership
	Member     *Member
}

// ResolvedPeriod is the effective reporting window a recap runs against.
// ID is nil when the window was synthesized from a bare year.
type ResolvedPeriod struct {
	ID            *uuid.UUID
	Name          string
	StartDate     string
	EndDate       string
	DefaultAmount decimal.Decimal
}
