package btrieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFixedRecords(t *testing.T, recordSize int, rows []string) *FileHandle {
	t.Helper()
	var data []byte
	for _, row := range rows {
		rec := make([]byte, recordSize)
		copy(rec, row)
		data = append(data, rec...)
	}
	return fileHandleWithData(data)
}

func TestExtractRecords(t *testing.T) {
	fh := makeFixedRecords(t, 32, []string{
		"ABC 123 Main St 90210 8005550123",
		"XYZ 456 Oak Ave 10001 8005559999",
	})

	records, err := ExtractRecords(fh, 32, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Index)
	assert.Equal(t, 2, records[1].Index)
	assert.True(t, records[0].HasAlpha)
	assert.True(t, records[0].HasDigits)
}

func TestExtractRecords_RespectsMax(t *testing.T) {
	fh := makeFixedRecords(t, 16, []string{"one", "two", "three"})

	records, err := ExtractRecords(fh, 16, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestExtractRecords_DropsIncompleteTrailingSlice(t *testing.T) {
	fh := fileHandleWithData(make([]byte, 50)) // not a multiple of 32

	records, err := ExtractRecords(fh, 32, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExtractRecords_InvalidSize(t *testing.T) {
	fh := fileHandleWithData(make([]byte, 32))

	_, err := ExtractRecords(fh, 0, 0)
	require.Error(t, err)

	var btrErr *Error
	require.ErrorAs(t, err, &btrErr)
	assert.Equal(t, KindValidation, btrErr.Kind)
}

func TestNewRecord_TrimsTrailingNulls(t *testing.T) {
	raw := append([]byte("hello"), make([]byte, 10)...)
	rec := newRecord(1, raw)
	assert.Equal(t, "hello", rec.DecodedText)
}
