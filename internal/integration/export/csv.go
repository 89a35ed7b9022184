package export

import (
	"encoding/csv"
	"io"

	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
)

// WriteRecapCSV streams an aggregated recap to w, row by row.
func WriteRecapCSV(w io.Writer, out *recap.GetRecapOutput) error {
	return writeCSV(w, recapRows(out))
}

// WriteFundCSV streams a fund transaction report to w, row by row.
func WriteFundCSV(w io.Writer, out *fundreport.ListTransactionsOutput) error {
	return writeCSV(w, fundRows(out))
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
