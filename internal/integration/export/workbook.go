package export

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/rukun-warga/backend/internal/application/usecase/fundreport"
	"github.com/rukun-warga/backend/internal/application/usecase/recap"
)

// The workbook is a minimal OOXML spreadsheet: five fixed parts and a
// single sheet holding every cell as an inline string.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>
<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>
</Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>
</Relationships>`

	workbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="Rekap" sheetId="1" r:id="rId1"/></sheets>
</workbook>`

	workbookRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// WriteRecapWorkbook writes an aggregated recap as an XLSX file to w.
// Rows and ordering match the CSV rendition.
func WriteRecapWorkbook(w io.Writer, out *recap.GetRecapOutput) error {
	return writeWorkbook(w, recapRows(out))
}

// WriteFundWorkbook writes a fund transaction report as an XLSX file to w.
func WriteFundWorkbook(w io.Writer, out *fundreport.ListTransactionsOutput) error {
	return writeWorkbook(w, fundRows(out))
}

func writeWorkbook(w io.Writer, rows [][]string) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"xl/workbook.xml", workbookXML},
		{"xl/_rels/workbook.xml.rels", workbookRelsXML},
		{"xl/worksheets/sheet1.xml", sheetXML(rows)},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return err
		}
	}
	return zw.Close()
}

// sheetXML renders the rows as a worksheet with inline string cells.
func sheetXML(rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + "\n<sheetData>\n")

	for i, row := range rows {
		rowNum := i + 1
		fmt.Fprintf(&b, `<row r="%d">`, rowNum)
		for j, cell := range row {
			fmt.Fprintf(&b, `<c r="%s%d" t="inlineStr"><is><t>%s</t></is></c>`,
				columnName(j), rowNum, xmlEscaper.Replace(cell))
		}
		b.WriteString("</row>\n")
	}

	b.WriteString("</sheetData>\n</worksheet>")
	return b.String()
}

// columnName converts a zero-based column index to its A1 letter form.
func columnName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}
