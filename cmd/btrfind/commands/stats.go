package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/btrfind/btrfind"
)

// FileStats is the JSON/table-renderable summary statsCmd prints.
type FileStats struct {
	Path            string   `json:"path"`
	ContentType     string   `json:"content_type"`
	AsciiPercentage float64  `json:"ascii_percentage"`
	RecordSize      int      `json:"record_size"`
	Confidence      float64  `json:"confidence"`
	ConfidenceLabel string   `json:"confidence_label"`
	RecordCount     int      `json:"record_count"`
	FieldCount      int      `json:"field_count"`
	HasCorruption   bool     `json:"has_corruption"`
	CorruptionNotes []string `json:"corruption_notes,omitempty"`
}

func statsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Display analysis statistics for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("stats requires exactly one file argument")
			}

			stats, err := gatherStats(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			case "table":
				return printStatsTable(stats)
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, json)")

	return cmd
}

func gatherStats(path string) (*FileStats, error) {
	p, err := btrfind.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer p.Close()

	result, err := p.Analyze()
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	stats := &FileStats{
		Path:            path,
		RecordSize:      result.RecordSize,
		Confidence:      result.Confidence,
		ConfidenceLabel: result.ConfidenceLabel,
		RecordCount:     len(result.Records),
		FieldCount:      len(result.Fields),
	}
	if result.Summary != nil {
		stats.ContentType = string(result.Summary.ContentType)
		stats.AsciiPercentage = result.Summary.AsciiPercentage
	}
	if result.Integrity != nil {
		stats.HasCorruption = result.Integrity.CorruptionDetected
		stats.CorruptionNotes = result.Integrity.CorruptionDetails
	}

	return stats, nil
}

func printStatsTable(s *FileStats) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "FILE STATISTICS")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "Path:\t%s\n", s.Path)
	fmt.Fprintf(w, "Content type:\t%s\n", s.ContentType)
	fmt.Fprintf(w, "ASCII percentage:\t%.1f\n", s.AsciiPercentage)
	fmt.Fprintf(w, "Record size:\t%d\n", s.RecordSize)
	fmt.Fprintf(w, "Confidence:\t%.2f (%s)\n", s.Confidence, s.ConfidenceLabel)
	fmt.Fprintf(w, "Records:\t%d\n", s.RecordCount)
	fmt.Fprintf(w, "Fields:\t%d\n", s.FieldCount)
	fmt.Fprintf(w, "Corruption detected:\t%v\n", s.HasCorruption)

	return w.Flush()
}
