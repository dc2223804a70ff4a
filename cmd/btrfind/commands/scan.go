package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/btrfind/btrfind"
	"github.com/btrfind/btrfind/internal/batch"
	"github.com/btrfind/btrfind/internal/logger"
)

func scanCmd() *cobra.Command {
	var (
		concurrency int
		maxRecords  int
	)

	cmd := &cobra.Command{
		Use:   "scan <glob>",
		Short: "Analyze every file matching a glob pattern",
		Long: `Scan runs analysis across many files concurrently, one independent
pipeline per file.

Examples:
  btrfind scan "/data/legacy/*.dat"
  btrfind scan "/data/legacy/**/*.btr" --concurrency 8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			paths, err := filepath.Glob(pattern)
			if err != nil {
				return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files matched %q", pattern)
			}

			var opts []btrfind.Option
			if maxRecords > 0 {
				opts = append(opts, btrfind.WithMaxRecords(maxRecords))
			}

			results := batch.Run(paths, batch.Config{
				Concurrency:     concurrency,
				PipelineOptions: opts,
			})

			failures := 0
			for _, r := range results {
				if r.Err != nil {
					failures++
					logger.Log.Error("{Path}: {Error}", r.Path, r.Err)
					continue
				}
				logger.Log.Info("{Path}: record size {RecordSize}, {RecordCount} records, {FieldCount} fields",
					r.Path, r.Result.RecordSize, len(r.Result.Records), len(r.Result.Fields))
			}

			logger.Log.Info("Scan complete: {Total} files, {Failures} failures", len(results), failures)
			if failures > 0 {
				return fmt.Errorf("%d of %d files failed analysis", failures, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of files analyzed concurrently")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "Cap the number of records read per file")

	return cmd
}
