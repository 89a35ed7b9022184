package dto

import (
	"time"

	"github.com/rukun-warga/backend/internal/application/usecase/period"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

// CreatePeriodRequest represents the request body for period creation.
type CreatePeriodRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
	DefaultAmount float64 `json:"default_amount"`
}

// UpdatePeriodRequest represents the request body for period update.
type UpdatePeriodRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	DefaultAmount *float64 `json:"default_amount,omitempty"`
}

// MarkDrawnRequest represents the request body for recording a draw.
type MarkDrawnRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}

// PeriodResponse represents a single period in API responses.
type PeriodResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DefaultAmount string    `json:"default_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PeriodListResponse represents the response for listing periods.
type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// MembershipResponse represents one draw membership in API responses.
type MembershipResponse struct {
	ID         string     `json:"id"`
	MemberID   string     `json:"member_id"`
	MemberName string     `json:"member_name,omitempty"`
	Unit       string     `json:"unit,omitempty"`
	Status     string     `json:"status"`
	DrawnAt    *time.Time `json:"drawn_at,omitempty"`
}

// PeriodDetailResponse represents the response for fetching one period.
type PeriodDetailResponse struct {
	Period      PeriodResponse       `json:"period"`
	Memberships []MembershipResponse `json:"memberships"`
}

// DrawListResponse represents the response for listing a period's draws.
type DrawListResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
}

// ToPeriodResponse converts a domain Period entity to a PeriodResponse DTO.
func ToPeriodResponse(p *entity.Period) PeriodResponse {
	return PeriodResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		DefaultAmount: p.DefaultAmount.String(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToMembershipResponses converts memberships with members to DTOs.
func ToMembershipResponses(memberships []*entity.MembershipWithMember) []MembershipResponse {
	responses := make([]MembershipResponse, len(memberships))
	for i, m := range memberships {
		response := MembershipResponse{
			ID:       m.Membership.ID.String(),
			MemberID: m.Membership.MemberID.String(),
			Status:   string(m.Membership.Status),
			DrawnAt:  m.Membership.DrawnAt,
		}
		if m.Member != nil {
			response.MemberName = m.Member.Name
			response.Unit = m.Member.Unit
		}
		responses[i] = response
	}
	return responses
}

// ToPeriodDetailResponse converts a GetPeriodOutput to PeriodDetailResponse.
func ToPeriodDetailResponse(output *period.GetPeriodOutput) PeriodDetailResponse {
	return PeriodDetailResponse{
		Period:      ToPeriodResponse(output.Period),
		Memberships: ToMembershipResponses(output.Memberships),
	}
}
