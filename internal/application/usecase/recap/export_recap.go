package recap

import (
	"context"
)

// ExportRecapUseCase builds the full, unpaginated recap that the CSV
// and workbook renderers consume.
type ExportRecapUseCase struct {
	getRecap *GetRecapUseCase
}

// NewExportRecapUseCase creates a new ExportRecapUseCase instance.
func NewExportRecapUseCase(getRecap *GetRecapUseCase) *ExportRecapUseCase {
	return &ExportRecapUseCase{
		getRecap: getRecap,
	}
}

// Execute builds the recap over every matching member.
func (uc *ExportRecapUseCase) Execute(ctx context.Context, input GetRecapInput) (*GetRecapOutput, error) {
	out, err := uc.getRecap.buildRecap(ctx, input)
	if err != nil {
		return nil, err
	}
	out.Pagination = RecapPaginationOutput{
		CurrentPage: 1,
		PerPage:     len(out.Members),
		Total:       int64(len(out.Members)),
		LastPage:    1,
	}
	return out, nil
}
