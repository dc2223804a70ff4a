package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSink_LocalPath(t *testing.T) {
	sink, err := NewSink(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "local", sink.Name())
}

func TestNewSink_RejectsEmpty(t *testing.T) {
	_, err := NewSink("")
	assert.Error(t, err)
}

func TestLocalSink_Put(t *testing.T) {
	dir := t.TempDir()
	sink := NewLocalSink(dir)

	require.NoError(t, sink.Put("nested/out.csv", []byte("data")))

	got, err := os.ReadFile(filepath.Join(dir, "nested/out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}
