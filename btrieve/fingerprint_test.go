package btrieve

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendFingerprintSignal_UniformPagesFlagged(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, PageSize*4)
	fh := fileHandleWithData(data)

	r := &IntegrityReport{}
	appendFingerprintSignal(fh, r)

	require := assert.New(t)
	require.False(r.CorruptionDetected, "fingerprint signal must never set CorruptionDetected")
	require.NotEmpty(r.CorruptionDetails)
}

func TestAppendFingerprintSignal_VariedPagesNotFlagged(t *testing.T) {
	var data []byte
	for i := 0; i < 10; i++ {
		page := bytes.Repeat([]byte{byte(i)}, PageSize)
		data = append(data, page...)
	}
	fh := fileHandleWithData(data)

	r := &IntegrityReport{}
	appendFingerprintSignal(fh, r)

	assert.Empty(t, r.CorruptionDetails)
}
