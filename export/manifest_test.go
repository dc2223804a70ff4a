package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManifest(t *testing.T) {
	payload := []byte("hello export")
	m := BuildManifest("csv", 3, payload)

	sum := sha256.Sum256(payload)
	assert.Equal(t, "csv", m.Format)
	assert.Equal(t, 3, m.RecordCount)
	assert.Equal(t, len(payload), m.Bytes)
	assert.Equal(t, hex.EncodeToString(sum[:]), m.Sha256)
}

func TestMarshalManifest(t *testing.T) {
	m := BuildManifest("jsonl", 1, []byte("x"))
	data, err := MarshalManifest(m)
	require.NoError(t, err)

	var decoded Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *m, decoded)
}
