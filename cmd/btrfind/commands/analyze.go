package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btrfind/btrfind"
	"github.com/btrfind/btrfind/internal/logger"
)

func analyzeCmd() *cobra.Command {
	var (
		recordSize int
		maxRecords int
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a Btrieve v5 file's structure",
		Long: `Analyze runs the full forensic pipeline against a Btrieve v5 file:
integrity check, content classification, record-size detection, record
extraction, and field boundary discovery.

Examples:
  # Auto-detect record size
  btrfind analyze legacy.dat

  # Force a known record size, skipping the Size Detector
  btrfind analyze legacy.dat --record-size 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var opts []btrfind.Option
			if recordSize > 0 {
				opts = append(opts, btrfind.WithRecordSize(recordSize))
			}
			if maxRecords > 0 {
				opts = append(opts, btrfind.WithMaxRecords(maxRecords))
			}

			p, err := btrfind.New(path, opts...)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer p.Close()

			result, err := p.Analyze()
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			printAnalysis(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&recordSize, "record-size", 0, "Force a record size, skipping auto-detection")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "Cap the number of records read")

	return cmd
}

func printAnalysis(r *btrfind.Result) {
	logger.Log.Info("")
	logger.Log.Info("=== ANALYSIS REPORT ===")
	logger.Log.Info("File: {Path}", r.Path)

	if r.Integrity != nil {
		if r.Integrity.CorruptionDetected {
			logger.Log.Warn("Corruption detected: {Details}", r.Integrity.CorruptionDetails)
		} else {
			logger.Log.Info("Integrity: OK ({DataPages} data pages)", r.Integrity.DataPages)
		}
	}

	if r.Summary != nil {
		logger.Log.Info("Content type: {ContentType}", r.Summary.ContentType)
		logger.Log.Info("ASCII percentage: {AsciiPercentage}", r.Summary.AsciiPercentage)
	}

	logger.Log.Info("Record size: {RecordSize} (confidence {Confidence}, {Label})",
		r.RecordSize, r.Confidence, r.ConfidenceLabel)
	logger.Log.Info("Records extracted: {RecordCount}", len(r.Records))
	logger.Log.Info("Fields discovered: {FieldCount}", len(r.Fields))

	for _, f := range r.Fields {
		logger.Log.Info("  [{Position}:{Length}] {Name} ({TypeTag})", f.Position, f.Length, f.Name, f.TypeTag)
	}
}
