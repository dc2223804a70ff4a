package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btrfind/btrfind/btrieve"
	"github.com/btrfind/btrfind/resilience"
)

func writeFixture(t *testing.T, name string, rows []string, recordSize int) string {
	t.Helper()
	var data []byte
	for _, row := range rows {
		rec := make([]byte, recordSize)
		copy(rec, row)
		data = append(data, rec...)
	}
	buf := make([]byte, btrieve.FCRPages*btrieve.PageSize+len(data))
	copy(buf[btrieve.FCRPages*btrieve.PageSize:], data)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func noRetryPolicy() *resilience.RetryPolicy {
	p := resilience.DefaultRetryPolicy()
	p.MaxAttempts = 1
	return p
}

func TestRun_AllSucceed(t *testing.T) {
	rows := []string{"row one data here", "row two data here", "row three data"}
	a := writeFixture(t, "a.dat", rows, 32)
	b := writeFixture(t, "b.dat", rows, 32)

	results := Run([]string{a, b}, Config{Concurrency: 2, RetryPolicy: noRetryPolicy()})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.NotNil(t, r.Result)
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	rows := []string{"row one data here"}
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeFixture(t, filepath.Base(t.TempDir())+string(rune('a'+i))+".dat", rows, 32)
	}

	results := Run(paths, Config{Concurrency: 3, RetryPolicy: noRetryPolicy()})
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
}

func TestRun_ReportsPerFileFailure(t *testing.T) {
	good := writeFixture(t, "good.dat", []string{"row one data here"}, 32)
	missing := filepath.Join(t.TempDir(), "missing.dat")

	results := Run([]string{good, missing}, Config{Concurrency: 2, RetryPolicy: noRetryPolicy()})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestRun_DefaultsConcurrencyAndRetryPolicy(t *testing.T) {
	path := writeFixture(t, "solo.dat", []string{"row one data here"}, 32)
	results := Run([]string{path}, Config{})
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}
