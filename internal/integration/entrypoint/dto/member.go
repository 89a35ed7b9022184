package dto

import (
	"time"

	"github.com/rukun-warga/backend/internal/domain/entity"
)

// CreateMemberRequest represents the request body for member registration.
type CreateMemberRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Address   string  `json:"address,omitempty" binding:"omitempty,max=500"`
	BirthDate string  `json:"birth_date,omitempty"`
	Unit      string  `json:"unit,omitempty" binding:"omitempty,max=8"`
	Category  string  `json:"category" binding:"required,oneof=kas arisan"`
	Role      *string `json:"role,omitempty"`
}

// UpdateMemberRequest represents the request body for member update.
type UpdateMemberRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Address   *string `json:"address,omitempty" binding:"omitempty,max=500"`
	BirthDate *string `json:"birth_date,omitempty"`
	Unit      *string `json:"unit,omitempty" binding:"omitempty,max=8"`
	Role      *string `json:"role,omitempty"`
}

// MemberResponse represents a single member in API responses.
type MemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	BirthDate string    `json:"birth_date"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Role      string    `json:"role"`
	DuesTotal string    `json:"dues_total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberListResponse represents the response for listing members.
type MemberListResponse struct {
	Members    []MemberResponse   `json:"members"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToMemberResponse converts a domain Member entity to a MemberResponse DTO.
func ToMemberResponse(member *entity.Member) MemberResponse {
	return MemberResponse{
		ID:        member.ID.String(),
		Name:      member.Name,
		Address:   member.Address,
		BirthDate: member.BirthDate,
		Unit:      member.Unit,
		Category:  string(member.Category),
		Role:      string(member.Role),
		DuesTotal: "0",
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}

// ToMemberListResponse converts a MemberListResult to MemberListResponse.
func ToMemberListResponse(result *entity.MemberListResult) MemberListResponse {
	members := make([]MemberResponse, len(result.Members))
	for i, m := range result.Members {
		response := ToMemberResponse(m.Member)
		response.DuesTotal = m.DuesTotal.String()
		members[i] = response
	}

	return MemberListResponse{
		Members: members,
		Pagination: PaginationResponse{
			CurrentPage: result.Page,
			PerPage:     result.PerPage,
			Total:       result.Total,
			LastPage:    result.LastPage,
		},
	}
}
