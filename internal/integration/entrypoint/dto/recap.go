package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/usecase/recap"
)

// SaveRecapItemRequest represents one payment mark in an upsert batch.
type SaveRecapItemRequest struct {
	MemberID string   `json:"member_id" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Status   string   `json:"status" binding:"required,oneof=paid unpaid"`
	Amount   *float64 `json:"amount,omitempty"`
}

// SaveRecapRequest represents the request body for saving a recap batch.
type SaveRecapRequest struct {
	PeriodID string                 `json:"period_id" binding:"required"`
	Items    []SaveRecapItemRequest `json:"items" binding:"required,min=1"`
}

// SaveRecapResponse represents the response for saving a recap batch.
type SaveRecapResponse struct {
	Saved int `json:"saved"`
}

// ResolvedPeriodResponse represents the effective reporting window.
type ResolvedPeriodResponse struct {
	ID            *string `json:"id"`
	Name          string  `json:"name"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DefaultAmount string  `json:"default_amount"`
}

// DateCellResponse represents one payment cell of a member's recap row.
type DateCellResponse struct {
	Status string `json:"status"`
	Amount string `json:"amount"`
}

// MemberRecapResponse represents one member's aggregated recap row.
type MemberRecapResponse struct {
	MemberID string                      `json:"member_id"`
	Name     string                      `json:"name"`
	Unit     string                      `json:"unit"`
	Total    string                      `json:"total"`
	ByDate   map[string]DateCellResponse `json:"by_date"`
}

// RecapFiltersResponse echoes the filters a recap was built with.
type RecapFiltersResponse struct {
	Search    string  `json:"search,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	FromDate  string  `json:"from,omitempty"`
	ToDate    string  `json:"to,omitempty"`
	AmountMin *string `json:"amount_min,omitempty"`
	AmountMax *string `json:"amount_max,omitempty"`
	TotalMin  *string `json:"total_min,omitempty"`
	TotalMax  *string `json:"total_max,omitempty"`
}

// RecapResponse represents the response for building a recap report.
type RecapResponse struct {
	Period     ResolvedPeriodResponse `json:"period"`
	Dates      []string               `json:"dates"`
	Members    []MemberRecapResponse  `json:"members"`
	Units      []string               `json:"units"`
	GrandTotal string                 `json:"grand_total"`
	Filters    RecapFiltersResponse   `json:"filters"`
	Pagination PaginationResponse     `json:"pagination"`
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// ToRecapResponse converts a GetRecapOutput to RecapResponse, echoing
// the filters the report was built with.
func ToRecapResponse(output *recap.GetRecapOutput, input recap.GetRecapInput) RecapResponse {
	periodResponse := ResolvedPeriodResponse{
		Name:          output.Period.Name,
		StartDate:     output.Period.StartDate,
		EndDate:       output.Period.EndDate,
		DefaultAmount: output.Period.DefaultAmount.String(),
	}
	if output.Period.ID != nil {
		id := output.Period.ID.String()
		periodResponse.ID = &id
	}

	members := make([]MemberRecapResponse, len(output.Members))
	for i, m := range output.Members {
		byDate := make(map[string]DateCellResponse, len(m.ByDate))
		for date, cell := range m.ByDate {
			byDate[date] = DateCellResponse{
				Status: string(cell.Status),
				Amount: cell.Amount.String(),
			}
		}
		members[i] = MemberRecapResponse{
			MemberID: m.MemberID.String(),
			Name:     m.Name,
			Unit:     m.Unit,
			Total:    m.Total.String(),
			ByDate:   byDate,
		}
	}

	units := output.Units
	if units == nil {
		units = []string{}
	}

	return RecapResponse{
		Period:     periodResponse,
		Dates:      output.Dates,
		Members:    members,
		Units:      units,
		GrandTotal: output.GrandTotal.String(),
		Filters: RecapFiltersResponse{
			Search:    input.Search,
			Unit:      input.Unit,
			FromDate:  input.FromDate,
			ToDate:    input.ToDate,
			AmountMin: decimalString(input.RowAmountMin),
			AmountMax: decimalString(input.RowAmountMax),
			TotalMin:  decimalString(input.TotalAmountMin),
			TotalMax:  decimalString(input.TotalAmountMax),
		},
		Pagination: PaginationResponse{
			CurrentPage: output.Pagination.CurrentPage,
			PerPage:     output.Pagination.PerPage,
			Total:       output.Pagination.Total,
			LastPage:    output.Pagination.LastPage,
		},
	}
}
