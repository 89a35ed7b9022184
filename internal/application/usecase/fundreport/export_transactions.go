package fundreport

import (
	"context"
)

// ExportTransactionsUseCase builds the full, unpaginated transaction
// report that the CSV and workbook renderers consume.
type ExportTransactionsUseCase struct {
	list *ListTransactionsUseCase
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(list *ListTransactionsUseCase) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		list: list,
	}
}

// Execute builds the report over the whole filtered set.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	out, err := uc.list.buildReport(ctx, input)
	if err != nil {
		return nil, err
	}
	out.Pagination = FundPaginationOutput{
		CurrentPage: 1,
		PerPage:     len(out.Transactions),
		Total:       int64(len(out.Transactions)),
		LastPage:    1,
	}
	return out, nil
}
