package btrieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsFromRows(rows []string, recordSize int) []*Record {
	records := make([]*Record, 0, len(rows))
	for i, row := range rows {
		raw := make([]byte, recordSize)
		copy(raw, row)
		records = append(records, newRecord(i+1, raw))
	}
	return records
}

func TestDetectFieldBoundaries_EmptyInput(t *testing.T) {
	assert.Nil(t, DetectFieldBoundaries(nil, 32))
	assert.Nil(t, DetectFieldBoundaries([]*Record{{}}, 0))
}

func TestDetectFieldBoundaries_ZipAndStateColumns(t *testing.T) {
	// 2-char state column at offset 0, 5-digit zip column at offset 2,
	// null padding fills the rest.
	rows := []string{
		"CA90210\x00\x00\x00\x00\x00",
		"NY10001\x00\x00\x00\x00\x00",
		"TX73301\x00\x00\x00\x00\x00",
	}
	records := recordsFromRows(rows, 16)

	fields := DetectFieldBoundaries(records, 16)
	require.NotEmpty(t, fields)

	var sawState, sawZip bool
	for _, f := range fields {
		if f.Position == 0 && f.Length == 2 {
			sawState = true
			assert.Equal(t, TypeState, f.TypeTag)
		}
		if f.Position == 2 && f.Length == 5 {
			sawZip = true
			assert.Equal(t, TypeZipCode, f.TypeTag)
		}
	}
	assert.True(t, sawState, "expected a 2-char state column")
	assert.True(t, sawZip, "expected a 5-digit zip column")
}

func TestDetectFieldBoundaries_NullPaddingSplitsRuns(t *testing.T) {
	rows := []string{
		"AB\x00\x00CD",
		"EF\x00\x00GH",
		"IJ\x00\x00KL",
	}
	records := recordsFromRows(rows, 6)

	fields := DetectFieldBoundaries(records, 6)
	// Two alpha runs of length 2, separated by two null-padding positions.
	require.Len(t, fields, 2)
	assert.Equal(t, 0, fields[0].Position)
	assert.Equal(t, 2, fields[0].Length)
	assert.Equal(t, 4, fields[1].Position)
	assert.Equal(t, 2, fields[1].Length)
}

func TestDetectFieldBoundaries_DigitRunNamedByLength(t *testing.T) {
	rows := []string{"1234567890", "9876543210", "1111111111"}
	records := recordsFromRows(rows, 10)

	fields := DetectFieldBoundaries(records, 10)
	require.Len(t, fields, 1)
	assert.Equal(t, TypePhone, fields[0].TypeTag)
	assert.Equal(t, 10, fields[0].Length)
}
