package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/btrfind/btrfind/btrieve"
)

// standardCSVColumns are the six fixed columns every CSV row carries ahead
// of the sorted extracted-field columns.
var standardCSVColumns = []string{
	"record_num", "record_size", "decoded_text",
	"printable_chars", "has_digits", "has_alpha",
}

// RenderCSV writes one row per record. The header is the six standard
// columns followed by the sorted union of every extracted-field key seen
// across records; missing fields are empty strings.
func RenderCSV(records []*btrieve.Record) ([]byte, error) {
	fieldKeys := sortedFieldKeys(records)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, standardCSVColumns...), fieldKeys...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range records {
		row := make([]string, 0, len(header))
		row = append(row,
			strconv.Itoa(r.Index),
			strconv.Itoa(r.Length),
			r.DecodedText,
			strconv.Itoa(r.PrintableChars),
			strconv.FormatBool(r.HasDigits),
			strconv.FormatBool(r.HasAlpha),
		)
		for _, name := range fieldKeys {
			row = append(row, r.ExtractedFields[name])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
