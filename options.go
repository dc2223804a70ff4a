package btrfind

import (
	"fmt"

	"github.com/willibrandon/mtlog/core"

	"github.com/btrfind/btrfind/btrieve"
)

// Option configures a Pipeline.
type Option func(*Config) error

// Config holds Pipeline configuration.
type Config struct {
	// Core configuration
	RecordSize       int // 0 means auto-detect
	MaxRecords       int // 0 means DefaultMaxRecordsForDetection
	CandidateSizes   []int

	// Logging
	Logger core.Logger

	// Export destinations
	ExportSinkURI string

	// Monitoring
	MetricsEnabled bool
}

// WithRecordSize forces a specific record size, skipping the Size Detector.
func WithRecordSize(size int) Option {
	return func(c *Config) error {
		if size <= 0 {
			return fmt.Errorf("record size must be positive")
		}
		c.RecordSize = size
		return nil
	}
}

// WithMaxRecords caps the number of records the Size Detector and Extractor
// will read.
func WithMaxRecords(max int) Option {
	return func(c *Config) error {
		if max <= 0 {
			return fmt.Errorf("max records must be positive")
		}
		c.MaxRecords = max
		return nil
	}
}

// WithCandidateSizes stores sizes in Config.CandidateSizes. Analyze does not
// read this field: the Size Detector always tries the fixed
// btrieve.CandidateRecordSizes list.
func WithCandidateSizes(sizes []int) Option {
	return func(c *Config) error {
		if len(sizes) == 0 {
			return fmt.Errorf("candidate sizes must not be empty")
		}
		c.CandidateSizes = sizes
		return nil
	}
}

// WithLogger attaches a structured logger to the pipeline's RunContext.
func WithLogger(l core.Logger) Option {
	return func(c *Config) error {
		c.Logger = l
		return nil
	}
}

// WithExportSink stores a destination URI (local path, or an s3://,
// azblob://, or gs:// URI) in Config.ExportSinkURI. Pipeline has no export
// step and does not read this field.
func WithExportSink(uri string) Option {
	return func(c *Config) error {
		if uri == "" {
			return fmt.Errorf("export sink URI must not be empty")
		}
		c.ExportSinkURI = uri
		return nil
	}
}

// WithMetrics sets Config.MetricsEnabled. Analyze does not read this field
// and records no metrics itself; batch metrics are recorded by
// internal/batch.Run regardless of it.
func WithMetrics() Option {
	return func(c *Config) error {
		c.MetricsEnabled = true
		return nil
	}
}

func defaultConfig() *Config {
	return &Config{
		MaxRecords:     btrieve.DefaultMaxRecordsForDetection,
		CandidateSizes: btrieve.CandidateRecordSizes,
	}
}

func (c *Config) validate() error {
	if c.RecordSize < 0 {
		return configErr("Config.validate", fmt.Errorf("record size must not be negative"))
	}
	return nil
}
