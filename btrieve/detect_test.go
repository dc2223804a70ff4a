package btrieve

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRecordSize_PicksBestScoring(t *testing.T) {
	row := "ABC 123 Main St Anytown CA 90210 procedure D1234 amount 42.50 more filler text here"
	rec := make([]byte, 64)
	copy(rec, row)

	var data []byte
	for i := 0; i < 20; i++ {
		data = append(data, rec...)
	}
	fh := fileHandleWithData(data)

	size, confidence, err := DetectRecordSize(fh, 0)
	require.NoError(t, err)
	assert.Equal(t, 64, size)
	assert.Greater(t, confidence, 0.0)
}

func TestDetectRecordSize_NoCandidateYieldsRecords(t *testing.T) {
	fh := fileHandleWithData(make([]byte, 10))

	_, _, err := DetectRecordSize(fh, 0)
	require.Error(t, err)

	var btrErr *Error
	require.ErrorAs(t, err, &btrErr)
	assert.Equal(t, KindData, btrErr.Kind)
}

func TestDetectRecordSize_ZeroScoreStillCounts(t *testing.T) {
	data := bytes.Repeat([]byte{0x00}, 32*5)
	fh := fileHandleWithData(data)

	size, _, err := DetectRecordSize(fh, 0)
	require.NoError(t, err)
	assert.Equal(t, 32, size)
}
