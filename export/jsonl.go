package export

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/btrfind/btrfind/btrieve"
)

type jsonlRecord struct {
	RecordNum       int               `json:"record_num"`
	RecordSize      int               `json:"record_size"`
	RawBytes        string            `json:"raw_bytes"`
	DecodedText     string            `json:"decoded_text"`
	PrintableChars  int               `json:"printable_chars"`
	HasDigits       bool              `json:"has_digits"`
	HasAlpha        bool              `json:"has_alpha"`
	ExtractedFields map[string]string `json:"extracted_fields"`
}

// RenderJSONL writes one JSON object per line, one line per record.
func RenderJSONL(records []*btrieve.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for _, r := range records {
		entry := jsonlRecord{
			RecordNum:       r.Index,
			RecordSize:      r.Length,
			RawBytes:        hex.EncodeToString(r.Raw),
			DecodedText:     r.DecodedText,
			PrintableChars:  r.PrintableChars,
			HasDigits:       r.HasDigits,
			HasAlpha:        r.HasAlpha,
			ExtractedFields: r.ExtractedFields,
		}
		if err := enc.Encode(entry); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
