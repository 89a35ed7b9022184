package dto

import (
	"time"

	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

// CreateFundTransactionRequest represents the request body for recording
// a cash movement.
type CreateFundTransactionRequest struct {
	Type   string  `json:"type" binding:"required,oneof=inflow outflow"`
	Amount float64 `json:"amount" binding:"required"`
	Memo   string  `json:"memo,omitempty" binding:"omitempty,max=500"`
	Date   string  `json:"date" binding:"required"`
}

// UpdateFundTransactionRequest represents the request body for updating
// a cash movement.
type UpdateFundTransactionRequest struct {
	Type   *string  `json:"type,omitempty" binding:"omitempty,oneof=inflow outflow"`
	Amount *float64 `json:"amount,omitempty"`
	Memo   *string  `json:"memo,omitempty" binding:"omitempty,max=500"`
	Date   *string  `json:"date,omitempty"`
}

// FundTransactionResponse represents a single cash movement in API responses.
type FundTransactionResponse struct {
	ID             string    `json:"id"`
	Fund           string    `json:"fund"`
	Type           string    `json:"type"`
	Amount         string    `json:"amount"`
	Memo           string    `json:"memo"`
	Date           string    `json:"date"`
	RunningBalance string    `json:"running_balance,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FundTransactionListResponse represents the response for listing cash
// movements.
type FundTransactionListResponse struct {
	Transactions  []FundTransactionResponse `json:"transactions"`
	Period        *ResolvedPeriodResponse   `json:"period,omitempty"`
	FilteredTotal string                    `json:"filtered_total"`
	FundBalance   string                    `json:"fund_balance"`
	Pagination    PaginationResponse        `json:"pagination"`
}

// FundSummaryResponse represents the response for a cash fund summary.
type FundSummaryResponse struct {
	Fund         string `json:"fund"`
	TotalInflow  string `json:"total_inflow"`
	TotalOutflow string `json:"total_outflow"`
	Balance      string `json:"balance"`
}

// ToFundTransactionResponse converts a domain FundTransaction to a DTO.
func ToFundTransactionResponse(txn *entity.FundTransaction) FundTransactionResponse {
	return FundTransactionResponse{
		ID:        txn.ID.String(),
		Fund:      string(txn.Fund),
		Type:      string(txn.Type),
		Amount:    txn.Amount.String(),
		Memo:      txn.Memo,
		Date:      txn.Date,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToFundTransactionListResponse converts a ListTransactionsOutput to
// FundTransactionListResponse.
func ToFundTransactionListResponse(output *fundreport.ListTransactionsOutput) FundTransactionListResponse {
	transactions := make([]FundTransactionResponse, len(output.Transactions))
	for i, item := range output.Transactions {
		response := ToFundTransactionResponse(item.Transaction)
		response.RunningBalance = item.RunningBalance.String()
		transactions[i] = response
	}

	result := FundTransactionListResponse{
		Transactions:  transactions,
		FilteredTotal: output.FilteredTotal.String(),
		FundBalance:   output.FundBalance.String(),
		Pagination: PaginationResponse{
			CurrentPage: output.Pagination.CurrentPage,
			PerPage:     output.Pagination.PerPage,
			Total:       output.Pagination.Total,
			LastPage:    output.Pagination.LastPage,
		},
	}

	if output.Period != nil {
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
		result.Period = &periodResponse
	}

	return result
}
