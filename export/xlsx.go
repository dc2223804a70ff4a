package export

import (
	"bytes"
	"strconv"

	"github.com/tealeg/xlsx"

	"github.com/btrfind/btrfind/btrieve"
)

// maxColumnWidth clamps every column to a readable width regardless of how
// long a decoded-text or extracted-field value runs.
const maxColumnWidth = 50.0

// RenderXLSX writes the record set as a single "Btrieve Records" sheet
// with a bold header row matching RenderCSV's column layout and column
// widths clamped to maxColumnWidth.
func RenderXLSX(records []*btrieve.Record) ([]byte, error) {
	fieldKeys := sortedFieldKeys(records)
	columns := append(append([]string{}, standardCSVColumns...), fieldKeys...)

	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet("Btrieve Records")
	if err != nil {
		return nil, err
	}

	headerStyle := xlsx.NewStyle()
	headerStyle.Font = *xlsx.NewFont(11, "Calibri")
	headerStyle.Font.Bold = true
	headerStyle.ApplyFont = true

	header := sheet.AddRow()
	for _, name := range columns {
		cell := header.AddCell()
		cell.SetString(name)
		cell.SetStyle(headerStyle)
	}

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().SetString(strconv.Itoa(r.Index))
		row.AddCell().SetString(strconv.Itoa(r.Length))
		row.AddCell().SetString(r.DecodedText)
		row.AddCell().SetString(strconv.Itoa(r.PrintableChars))
		row.AddCell().SetString(strconv.FormatBool(r.HasDigits))
		row.AddCell().SetString(strconv.FormatBool(r.HasAlpha))
		for _, name := range fieldKeys {
			row.AddCell().SetString(r.ExtractedFields[name])
		}
	}

	for i, name := range columns {
		width := float64(len(name))
		for _, row := range sheet.Rows {
			if i < len(row.Cells) {
				if l := float64(len(row.Cells[i].Value)); l > width {
					width = l
				}
			}
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		sheet.Col(i).Width = width
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
