package btrfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRecordSize_RejectsNonPositive(t *testing.T) {
	cfg := defaultConfig()
	err := WithRecordSize(0)(cfg)
	require.Error(t, err)
}

func TestWithRecordSize_Applies(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, WithRecordSize(128)(cfg))
	assert.Equal(t, 128, cfg.RecordSize)
}

func TestWithMaxRecords_RejectsNonPositive(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, WithMaxRecords(-1)(cfg))
}

func TestWithCandidateSizes_RejectsEmpty(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, WithCandidateSizes(nil)(cfg))
}

func TestWithExportSink_RejectsEmpty(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, WithExportSink("")(cfg))
}

func TestWithMetrics_Applies(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, WithMetrics()(cfg))
	assert.True(t, cfg.MetricsEnabled)
}

func TestConfig_ValidateRejectsNegativeRecordSize(t *testing.T) {
	cfg := defaultConfig()
	cfg.RecordSize = -5
	err := cfg.validate()
	require.Error(t, err)
	assert.Equal(t, KindConfig, ClassifyErr(err))
}
