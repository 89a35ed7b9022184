package recap

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/adapter"
	"github.com/rukun-warga/backend/internal/domain/entity"
	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

// defaultRecapPerPage is the member page size when none is requested.
const defaultRecapPerPage = 10

// GetRecapInput represents the input for building a recap report.
type GetRecapInput struct {
	Fund     entity.LedgerFund
	PeriodID *uuid.UUID
	Year     *int
	Search   string
	Unit     string
	FromDate string
	ToDate   string

	// RowAmountMin/Max filter at the matrix join stage and can drop
	// members from the report entirely. TotalAmountMin/Max filter on
	// the aggregated per-member total.
	RowAmountMin   *decimal.Decimal
	RowAmountMax   *decimal.Decimal
	TotalAmountMin *decimal.Decimal
	TotalAmountMax *decimal.Decimal

	Page    int
	PerPage int
}

// RecapPaginationOutput represents member pagination information.
type RecapPaginationOutput struct {
	CurrentPage int
	PerPage     int
	Total       int64
	LastPage    int
}

// GetRecapOutput represents the output of building a recap report.
type GetRecapOutput struct {
	Period     *entity.ResolvedPeriod
	Dates      []string
	Members    []*entity.MemberRecap
	Pagination RecapPaginationOutput
	Units      []string
	GrandTotal decimal.Decimal
}

// GetRecapUseCase builds the member x collection-date recap for one
// ledger fund.
type GetRecapUseCase struct {
	resolvePeriod *ResolvePeriodUseCase
	ledgerRepo    adapter.LedgerRepository
}

// NewGetRecapUseCase creates a new GetRecapUseCase instance.
func NewGetRecapUseCase(resolvePeriod *ResolvePeriodUseCase, ledgerRepo adapter.LedgerRepository) *GetRecapUseCase {
	return &GetRecapUseCase{
		resolvePeriod: resolvePeriod,
		ledgerRepo:    ledgerRepo,
	}
}

// Execute builds the recap and paginates its members.
func (uc *GetRecapUseCase) Execute(ctx context.Context, input GetRecapInput) (*GetRecapOutput, error) {
	full, err := uc.buildRecap(ctx, input)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultRecapPerPage
	}

	total := int64(len(full.Members))
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	start := (page - 1) * perPage
	if start > len(full.Members) {
		start = len(full.Members)
	}
	end := start + perPage
	if end > len(full.Members) {
		end = len(full.Members)
	}

	full.Members = full.Members[start:end]
	full.Pagination = RecapPaginationOutput{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
	return full, nil
}

// buildRecap resolves the window, runs the matrix query and aggregates
// the full member set without pagination.
func (uc *GetRecapUseCase) buildRecap(ctx context.Context, input GetRecapInput) (*GetRecapOutput, error) {
	if !entity.ValidLedgerFund(input.Fund) {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidLedgerFund, "unknown ledger fund", domainerror.ErrInvalidLedgerFund)
	}
	if input.FromDate != "" && !ValidISODate(input.FromDate) {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidRecapDate, "invalid from date", domainerror.ErrInvalidRecapDate)
	}
	if input.ToDate != "" && !ValidISODate(input.ToDate) {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidRecapDate, "invalid to date", domainerror.ErrInvalidRecapDate)
	}

	resolved, err := uc.resolvePeriod.Execute(ctx, ResolvePeriodInput{PeriodID: input.PeriodID, Year: input.Year})
	if err != nil {
		return nil, err
	}

	dates, err := BiweeklyDates(resolved.StartDate, resolved.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := uc.ledgerRepo.QueryMatrix(ctx, adapter.MatrixFilter{
		Fund:      input.Fund,
		PeriodID:  resolved.ID,
		Dates:     dates,
		Search:    input.Search,
		Unit:      input.Unit,
		AmountMin: input.RowAmountMin,
		AmountMax: input.RowAmountMax,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
	})
	if err != nil {
		return nil, err
	}

	members := aggregateRows(rows, dates)
	members = filterByTotal(members, input.TotalAmountMin, input.TotalAmountMax)

	grandTotal := decimal.Zero
	for _, m := range members {
		grandTotal = grandTotal.Add(m.Total)
	}

	units, err := uc.ledgerRepo.DistinctUnits(ctx)
	if err != nil {
		return nil, err
	}

	return &GetRecapOutput{
		Period:     resolved,
		Dates:      dates,
		Members:    members,
		Units:      units,
		GrandTotal: grandTotal,
	}, nil
}

// aggregateRows groups matrix rows by member and walks the full lattice
// so every member carries a cell for every collection date. Dates with
// no ledger row default to unpaid with a zero amount. Member order
// follows row order, which the repository keeps stable (unit, name).
func aggregateRows(rows []*entity.MatrixRow, dates []string) []*entity.MemberRecap {
	var order []uuid.UUID
	byMember := make(map[uuid.UUID][]*entity.MatrixRow)
	for _, row := range rows {
		if _, seen := byMember[row.MemberID]; !seen {
			order = append(order, row.MemberID)
		}
		byMember[row.MemberID] = append(byMember[row.MemberID], row)
	}

	recaps := make([]*entity.MemberRecap, 0, len(order))
	for _, memberID := range order {
		memberRows := byMember[memberID]
		recap := &entity.MemberRecap{
			MemberID: memberID,
			Name:     memberRows[0].Name,
			Unit:     memberRows[0].Unit,
			Total:    decimal.Zero,
			ByDate:   make(map[string]entity.DateCell, len(dates)),
		}

		cells := make(map[string]*entity.MatrixRow, len(memberRows))
		for _, row := range memberRows {
			if row.Status != nil {
				cells[row.Date] = row
			}
		}

		for _, date := range dates {
			cell := entity.DateCell{Status: entity.PaymentStatusUnpaid, Amount: decimal.Zero}
			if row, ok := cells[date]; ok {
				cell.Status = *row.Status
				if row.Amount != nil {
					cell.Amount = *row.Amount
				}
				recap.Total = recap.Total.Add(cell.Amount)
			}
			recap.ByDate[date] = cell
		}

		recaps = append(recaps, recap)
	}
	return recaps
}

// filterByTotal keeps members whose aggregated total falls inside the
// requested bounds.
func filterByTotal(members []*entity.MemberRecap, min, max *decimal.Decimal) []*entity.MemberRecap {
	if min == nil && max == nil {
		return members
	}
	filtered := make([]*entity.MemberRecap, 0, len(members))
	for _, m := range members {
		if min != nil && m.Total.LessThan(*min) {
			continue
		}
		if max != nil && m.Total.GreaterThan(*max) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}
