// Package recap contains the member-matrix reconciliation use cases
// shared by the arisan and dues funds.
package recap

import (
	"time"

	domainerror "github.com/rukun-warga/backend/internal/domain/error"
)

const isoDateLayout = "2006-01-02"

// latticeStride is the fixed number of days between collection dates.
const latticeStride = 14

// BiweeklyDates generates the collection date lattice for a reporting
// window: every 14th day from start, inclusive of any value not after
// end. Dates are ISO YYYY-MM-DD strings in strictly increasing order.
func BiweeklyDates(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(isoDateLayout, startDate)
	if err != nil {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidRecapDate, "invalid start date", domainerror.ErrInvalidRecapDate)
	}
	end, err := time.Parse(isoDateLayout, endDate)
	if err != nil {
		return nil, domainerror.NewRecapError(domainerror.ErrCodeInvalidRecapDate, "invalid end date", domainerror.ErrInvalidRecapDate)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, latticeStride) {
		dates = append(dates, d.Format(isoDateLayout))
	}
	return dates, nil
}

// ValidISODate reports whether s is a well-formed YYYY-MM-DD date.
func ValidISODate(s string) bool {
	_, err := time.Parse(isoDateLayout, s)
	return err == nil
}
