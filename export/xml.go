package export

import (
	"encoding/xml"

	"github.com/btrfind/btrfind/btrieve"
)

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlExtractedFields struct {
	Fields []xmlField `xml:"field"`
}

type xmlRecord struct {
	Number          int                 `xml:"number,attr"`
	Size            int                 `xml:"size,attr"`
	DecodedText     string              `xml:"decoded_text"`
	PrintableChars  int                 `xml:"printable_chars"`
	HasDigits       bool                `xml:"has_digits"`
	HasAlpha        bool                `xml:"has_alpha"`
	ExtractedFields *xmlExtractedFields `xml:"extracted_fields,omitempty"`
}

type xmlDocument struct {
	XMLName xml.Name    `xml:"btrieve_records"`
	Records []xmlRecord `xml:"record"`
}

// RenderXML writes the record set as a single <btrieve_records> document,
// one <record number="N" size="R"> element per record carrying the
// standard fields as children plus an optional <extracted_fields> child
// listing every non-empty closed-vocabulary match as a <field name="...">.
func RenderXML(records []*btrieve.Record) ([]byte, error) {
	fieldKeys := sortedFieldKeys(records)
	doc := xmlDocument{Records: make([]xmlRecord, 0, len(records))}

	for _, r := range records {
		entry := xmlRecord{
			Number:         r.Index,
			Size:           r.Length,
			DecodedText:    r.DecodedText,
			PrintableChars: r.PrintableChars,
			HasDigits:      r.HasDigits,
			HasAlpha:       r.HasAlpha,
		}

		var fields []xmlField
		for _, name := range fieldKeys {
			if value, ok := r.ExtractedFields[name]; ok && value != "" {
				fields = append(fields, xmlField{Name: name, Value: value})
			}
		}
		if len(fields) > 0 {
			entry.ExtractedFields = &xmlExtractedFields{Fields: fields}
		}

		doc.Records = append(doc.Records, entry)
	}

	payload, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), payload...), nil
}
