package btrfind

import (
	"fmt"

	"github.com/willibrandon/mtlog/core"

	"github.com/btrfind/btrfind/btrieve"
	"github.com/btrfind/btrfind/internal/logger"
)

// RunContext carries everything a single pipeline run needs that would
// otherwise be global mutable state: the logger bound to this run. It is
// threaded explicitly rather than read from a package-level variable so
// that concurrent batch runs (see internal/batch) never share state.
type RunContext struct {
	Logger core.Logger
}

// Pipeline analyzes a single Btrieve v5 file. It is not safe for concurrent
// use; callers running many files concurrently should construct one
// Pipeline per file (see internal/batch.Run).
type Pipeline struct {
	path   string
	cfg    *Config
	ctx    *RunContext
	handle *btrieve.FileHandle
	closed bool
}

// Result is the outcome of a full Analyze run: everything the Size
// Detector, Content Classifier, Extractor, and Field Boundary Detector
// produced for one file.
type Result struct {
	Path            string
	Integrity       *btrieve.IntegrityReport
	Summary         *btrieve.FileSummary
	RecordSize      int
	Confidence      float64
	ConfidenceLabel string
	Records         []*btrieve.Record
	Fields          []*btrieve.FieldDescriptor
}

// New opens path and builds a Pipeline ready to Analyze it. The file is
// read in full up front; Analyze itself never touches the filesystem again.
func New(path string, opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("btrfind: invalid option: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("btrfind: invalid configuration: %w", err)
	}

	handle, err := btrieve.Open(path)
	if err != nil {
		return nil, err
	}

	runLogger := cfg.Logger
	if runLogger == nil {
		runLogger = logger.Log
	}

	return &Pipeline{
		path:   path,
		cfg:    cfg,
		ctx:    &RunContext{Logger: runLogger},
		handle: handle,
	}, nil
}

// Analyze runs the full read-only pipeline: integrity check, content
// classification, record-size detection (unless WithRecordSize pinned one),
// record extraction, and field boundary detection.
func (p *Pipeline) Analyze() (*Result, error) {
	if p.closed {
		return nil, ErrPipelineClosed
	}

	ctxLog := p.ctx.Logger
	ctxLog.Info("starting analysis: {Path}", p.path)

	integrity := btrieve.CheckIntegrity(p.handle)
	summary := btrieve.ClassifyContent(p.handle)

	result := &Result{
		Path:      p.path,
		Integrity: integrity,
		Summary:   summary,
	}

	recordSize := p.cfg.RecordSize
	confidence := 0.0
	if recordSize == 0 {
		detected, score, err := btrieve.DetectRecordSize(p.handle, p.cfg.MaxRecords)
		if err != nil {
			ctxLog.Warn("record size detection failed: {Error}", err)
			return result, err
		}
		recordSize = detected
		confidence = score
	} else {
		confidence = 1.0
	}

	result.RecordSize = recordSize
	result.Confidence = confidence
	result.ConfidenceLabel = confidenceLabel(confidence)
	summary.QualityScore = confidence

	records, err := btrieve.ExtractRecords(p.handle, recordSize, p.cfg.MaxRecords)
	if err != nil {
		return result, err
	}
	result.Records = records
	summary.SetDetectedRecordSize(recordSize, estimatedRecordCount(p.handle, recordSize))

	result.Fields = btrieve.DetectFieldBoundaries(records, recordSize)

	ctxLog.Info("analysis complete: {RecordCount} records, {FieldCount} fields",
		len(records), len(result.Fields))

	return result, nil
}

// Close releases the Pipeline's in-memory buffer. A Pipeline may not be
// used after Close.
func (p *Pipeline) Close() error {
	p.closed = true
	p.handle = nil
	return nil
}

// confidenceLabel buckets a [0,1] quality score into a coarse label for
// human-facing reports: >= 0.7 is "high", >= 0.4 is "medium", anything
// lower is "low". It is a presentation banding of the score only.
func confidenceLabel(score float64) string {
	switch {
	case score >= 0.7:
		return "high"
	case score >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

func estimatedRecordCount(fh *btrieve.FileHandle, recordSize int) int64 {
	if recordSize <= 0 {
		return 0
	}
	data := fh.DataRegion()
	return int64(len(data) / recordSize)
}
