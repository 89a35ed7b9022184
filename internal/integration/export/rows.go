// Package export renders recap and fund reports as CSV and XLSX
// artifacts.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

// Payment glyphs used in exported sheets.
const (
	glyphPaid   = "✔"
	glyphUnpaid = "○"
)

// displayDate converts an ISO YYYY-MM-DD string to dd/mm/yyyy.
func displayDate(iso string) string {
	if len(iso) != 10 {
		return iso
	}
	return iso[8:10] + "/" + iso[5:7] + "/" + iso[0:4]
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// recapRows flattens an aggregated recap into sheet rows: a header, one
// row per member, then a blank row and the summary rows.
func recapRows(out *recap.GetRecapOutput) [][]string {
	header := []string{"Nama", "RT", "Total"}
	for _, date := range out.Dates {
		header = append(header, displayDate(date))
	}
	rows := [][]string{header}

	for _, m := range out.Members {
		row := []string{m.Name, m.Unit, money(m.Total)}
		for _, date := range out.Dates {
			glyph := glyphUnpaid
			if cell, ok := m.ByDate[date]; ok && cell.Status == entity.PaymentStatusPaid {
				glyph = glyphPaid
			}
			row = append(row, glyph)
		}
		rows = append(rows, row)
	}

	rows = append(rows,
		[]string{},
		[]string{"Total Semua", "", money(out.GrandTotal)},
		[]string{"Nominal Kas Per Periode", "", money(out.Period.DefaultAmount)},
	)
	return padRows(rows)
}

// fundRows flattens a fund transaction report into sheet rows.
func fundRows(out *fundreport.ListTransactionsOutput) [][]string {
	rows := [][]string{{"Tanggal", "Keterangan", "Jenis", "Jumlah", "Saldo"}}

	for _, item := range out.Transactions {
		kind := "Masuk"
		if item.Transaction.Type == entity.FlowTypeOutflow {
			kind = "Keluar"
		}
		rows = append(rows, []string{
			displayDate(item.Transaction.Date),
			item.Transaction.Memo,
			kind,
			money(item.Transaction.Amount),
			money(item.RunningBalance),
		})
	}

	rows = append(rows,
		[]string{},
		[]string{"Total Tersaring", "", "", money(out.FilteredTotal)},
		[]string{"Saldo Kas", "", "", money(out.FundBalance)},
	)
	return padRows(rows)
}

// padRows right-pads rows with empty cells to the header width so every
// emitted record is rectangular.
func padRows(rows [][]string) [][]string {
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}
