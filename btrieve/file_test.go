package btrieve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dataRegion []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dat")
	buf := make([]byte, FCRPages*PageSize+len(dataRegion))
	copy(buf[FCRPages*PageSize:], dataRegion)
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestOpen(t *testing.T) {
	path := writeTestFile(t, make([]byte, PageSize))

	fh, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "test.dat", fh.Filename)
	assert.Equal(t, int64(FCRPages*PageSize+PageSize), fh.TotalBytes)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.dat"))
	require.Error(t, err)

	var btrErr *Error
	require.ErrorAs(t, err, &btrErr)
	assert.Equal(t, KindFile, btrErr.Kind)
}

func TestDataRegion(t *testing.T) {
	payload := []byte("hello world")
	path := writeTestFile(t, payload)

	fh, err := Open(path)
	require.NoError(t, err)

	data := fh.DataRegion()
	require.Len(t, data, len(payload))
	assert.Equal(t, payload, data)
}

func TestDataRegion_TooSmall(t *testing.T) {
	fh := &FileHandle{Buffer: make([]byte, PageSize)}
	assert.Nil(t, fh.DataRegion())
}

func TestCheckIntegrity_ValidSize(t *testing.T) {
	path := writeTestFile(t, make([]byte, PageSize))

	fh, err := Open(path)
	require.NoError(t, err)

	report := CheckIntegrity(fh)
	assert.True(t, report.FileExists)
	assert.True(t, report.Readable)
	assert.True(t, report.ValidSize)
	assert.True(t, report.HasFCRPages)
}

func TestCheckIntegrity_TooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	report := CheckIntegrityAtPath(path)
	assert.False(t, report.ValidSize)
	require.NotEmpty(t, report.CorruptionDetails)
}

func TestCheckIntegrityAtPath_MissingFile(t *testing.T) {
	report := CheckIntegrityAtPath(filepath.Join(t.TempDir(), "missing.dat"))
	assert.False(t, report.FileExists)
	assert.False(t, report.Readable)
}
