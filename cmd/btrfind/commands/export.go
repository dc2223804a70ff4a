package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btrfind/btrfind"
	"github.com/btrfind/btrfind/export"
	"github.com/btrfind/btrfind/internal/logger"
)

func exportCmd() *cobra.Command {
	var (
		format     string
		output     string
		recordSize int
		maxRecords int
		sinkURI    string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export extracted records to CSV, JSONL, XML, XLSX, or SQLite",
		Long: `Export runs the analysis pipeline and renders extracted records in
one of several formats, writing a SHA-256 manifest sidecar alongside the
output.

Examples:
  btrfind export legacy.dat --format csv --output legacy.csv
  btrfind export legacy.dat --format sqlite --output legacy.sqlite
  btrfind export legacy.dat --format jsonl --output s3://bucket/legacy.jsonl`,
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

			if format == "sqlite" {
				if sinkURI != "" {
					return fmt.Errorf("sqlite export writes directly to a local file; --sink is not supported with --format sqlite")
				}
				if err := export.WriteSQLite(output, result.Records); err != nil {
					return fmt.Errorf("failed to write sqlite export: %w", err)
				}
				payload, err := os.ReadFile(output)
				if err != nil {
					return fmt.Errorf("failed to read sqlite export: %w", err)
				}
				manifestPayload, err := export.MarshalManifest(export.BuildManifest(format, len(result.Records), payload))
				if err != nil {
					return fmt.Errorf("failed to build manifest: %w", err)
				}
				if err := os.WriteFile(output+".manifest.json", manifestPayload, 0o644); err != nil {
					return fmt.Errorf("failed to write manifest: %w", err)
				}
				logger.Log.Info("Exported {RecordCount} records to {Output}", len(result.Records), output)
				return nil
			}

			payload, err := renderFormat(format, result)
			if err != nil {
				return err
			}

			dest := sinkURI
			key := filepath.Base(output)
			if dest == "" {
				if i := strings.Index(output, "://"); i >= 0 && strings.LastIndex(output, "/") > i+2 {
					// A URI in --output names both the remote sink and the key.
					j := strings.LastIndex(output, "/")
					dest, key = output[:j], output[j+1:]
				} else {
					dest = filepath.Dir(output)
				}
			}
			sink, err := export.NewSink(dest)
			if err != nil {
				return fmt.Errorf("failed to create export sink: %w", err)
			}

			if err := sink.Put(key, payload); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			manifest := export.BuildManifest(format, len(result.Records), payload)
			manifestPayload, err := export.MarshalManifest(manifest)
			if err != nil {
				return fmt.Errorf("failed to build manifest: %w", err)
			}
			if err := sink.Put(key+".manifest.json", manifestPayload); err != nil {
				return fmt.Errorf("failed to write manifest: %w", err)
			}

			logger.Log.Info("Exported {RecordCount} records to {Key} via {Sink}", len(result.Records), key, sink.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv, jsonl, xml, xlsx, sqlite")
	cmd.Flags().StringVar(&output, "output", "export.out", "Output file name")
	cmd.Flags().StringVar(&sinkURI, "sink", "", "Destination URI (local dir, s3://, azblob://, gs://); defaults to output's directory")
	cmd.Flags().IntVar(&recordSize, "record-size", 0, "Force a record size, skipping auto-detection")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "Cap the number of records read")
	cmd.MarkFlagRequired("output")

	return cmd
}

func renderFormat(format string, result *btrfind.Result) ([]byte, error) {
	switch format {
	case "csv":
		return export.RenderCSV(result.Records)
	case "jsonl":
		return export.RenderJSONL(result.Records)
	case "xml":
		return export.RenderXML(result.Records)
	case "xlsx":
		return export.RenderXLSX(result.Records)
	default:
		return nil, &btrfind.PipelineError{
			Kind: btrfind.KindValidation,
			Op:   "export",
			Err:  fmt.Errorf("unsupported export format: %s", format),
		}
	}
}
