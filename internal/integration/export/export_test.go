package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
	"github.com/rukun-warga/backend/internal/domain/entity"
)

func sampleRecap() *recap.GetRecapOutput {
	dates := []string{"2025-01-01", "2025-01-15"}
	return &recap.GetRecapOutput{
		Period: &entity.ResolvedPeriod{
			Name:          "Periode Juli 2025",
			StartDate:     "2025-01-01",
			EndDate:       "2025-01-28",
			DefaultAmount: decimal.NewFromInt(50000),
		},
		Dates: dates,
		Members: []*entity.MemberRecap{
			{
				MemberID: uuid.New(),
				Name:     "Andi",
				Unit:     "01",
				Total:    decimal.NewFromInt(100000),
				ByDate: map[string]entity.DateCell{
					"2025-01-01": {Status: entity.PaymentStatusPaid, Amount: decimal.NewFromInt(50000)},
					"2025-01-15": {Status: entity.PaymentStatusPaid, Amount: decimal.NewFromInt(50000)},
				},
			},
			{
				MemberID: uuid.New(),
				Name:     "Budi",
				Unit:     "02",
				Total:    decimal.NewFromInt(50000),
				ByDate: map[string]entity.DateCell{
					"2025-01-01": {Status: entity.PaymentStatusPaid, Amount: decimal.NewFromInt(50000)},
					"2025-01-15": {Status: entity.PaymentStatusUnpaid, Amount: decimal.Zero},
				},
			},
		},
		GrandTotal: decimal.NewFromInt(150000),
	}
}

func TestWriteRecapCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecapCSV(&buf, sampleRecap()); err != nil {
		t.Fatalf("WriteRecapCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading rendered CSV failed: %v", err)
	}
	// Header, two members, blank spacer, two summary rows.
	if len(records) != 6 {
		t.Fatalf("got %d rows, want 6", len(records))
	}

	header := records[0]
	want := []string{"Nama", "RT", "Total", "01/01/2025", "15/01/2025"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}
	for i, record := range records {
		if len(record) != len(header) {
			t.Errorf("row %d has %d fields, want %d", i, len(record), len(header))
		}
	}

	andi := records[1]
	if andi[0] != "Andi" || andi[2] != "100000.00" || andi[3] != glyphPaid || andi[4] != glyphPaid {
		t.Errorf("unexpected row for Andi: %v", andi)
	}
	budi := records[2]
	if budi[3] != glyphPaid || budi[4] != glyphUnpaid {
		t.Errorf("unexpected glyphs for Budi: %v", budi)
	}

	if records[4][0] != "Total Semua" || records[4][2] != "150000.00" {
		t.Errorf("unexpected grand total row: %v", records[4])
	}
	if records[5][0] != "Nominal Kas Per Periode" || records[5][2] != "50000.00" {
		t.Errorf("unexpected default amount row: %v", records[5])
	}
}

func TestWriteFundCSV(t *testing.T) {
	out := &fundreport.ListTransactionsOutput{
		Transactions: []*entity.FundTransactionWithBalance{
			{
				Transaction: &entity.FundTransaction{
					Fund:   entity.CashFundTreasury,
					Type:   entity.FlowTypeOutflow,
					Amount: decimal.NewFromInt(40000),
					Memo:   "beli alat kebersihan",
					Date:   "2025-07-10",
				},
				RunningBalance: decimal.NewFromInt(60000),
			},
			{
				Transaction: &entity.FundTransaction{
					Fund:   entity.CashFundTreasury,
					Type:   entity.FlowTypeInflow,
					Amount: decimal.NewFromInt(100000),
					Memo:   "iuran bulanan",
					Date:   "2025-07-01",
				},
				RunningBalance: decimal.NewFromInt(100000),
			},
		},
		FilteredTotal: decimal.NewFromInt(60000),
		FundBalance:   decimal.NewFromInt(60000),
	}

	var buf bytes.Buffer
	if err := WriteFundCSV(&buf, out); err != nil {
		t.Fatalf("WriteFundCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading rendered CSV failed: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("got %d rows, want 6", len(records))
	}
	for i, record := range records {
		if len(record) != len(records[0]) {
			t.Errorf("row %d has %d fields, want %d", i, len(record), len(records[0]))
		}
	}

	first := records[1]
	if first[0] != "10/07/2025" || first[2] != "Keluar" || first[4] != "60000.00" {
		t.Errorf("unexpected first transaction row: %v", first)
	}
	if records[2][2] != "Masuk" {
		t.Errorf("inflow not labelled Masuk: %v", records[2])
	}
	if records[4][0] != "Total Tersaring" || records[4][3] != "60000.00" {
		t.Errorf("unexpected filtered total row: %v", records[4])
	}
	if records[5][0] != "Saldo Kas" || records[5][3] != "60000.00" {
		t.Errorf("unexpected balance row: %v", records[5])
	}
}

func TestWriteRecapWorkbookParts(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecapWorkbook(&buf, sampleRecap()); err != nil {
		t.Fatalf("WriteRecapWorkbook failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("rendered workbook is not a zip: %v", err)
	}

	found := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		found[f.Name] = true
	}
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
	} {
		if !found[name] {
			t.Errorf("workbook missing part %s", name)
		}
	}

	sheet, err := zr.Open("xl/worksheets/sheet1.xml")
	if err != nil {
		t.Fatalf("opening sheet failed: %v", err)
	}
	defer sheet.Close()
	raw, err := io.ReadAll(sheet)
	if err != nil {
		t.Fatalf("reading sheet failed: %v", err)
	}

	body := string(raw)
	for _, want := range []string{
		`<c r="A1" t="inlineStr"><is><t>Nama</t></is></c>`,
		"<t>Andi</t>",
		"<t>" + glyphPaid + "</t>",
		"<t>Total Semua</t>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sheet missing %q", want)
		}
	}
}

func TestSheetXMLEscapesContent(t *testing.T) {
	body := sheetXML([][]string{{`Tom & "Jerry" <RT>`}})
	if !strings.Contains(body, "<t>Tom &amp; &quot;Jerry&quot; &lt;RT&gt;</t>") {
		t.Errorf("cell content not escaped: %s", body)
	}
}

func TestColumnName(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA"}
	for index, want := range cases {
		if got := columnName(index); got != want {
			t.Errorf("columnName(%d) = %q, want %q", index, got, want)
		}
	}
}

func TestLocalSinkStore(t *testing.T) {
	dir := t.TempDir()
	sink := NewLocalSink(dir)

	path, err := sink.Store(context.Background(), "rekap.csv", "text/csv", strings.NewReader("Nama,RT\n"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("artifact stored outside sink dir: %s", path)
	}
}
