// Package commands implements CLI commands for btrfind.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	rootCmd = &cobra.Command{
		Use:   "btrfind",
		Short: "Forensic reader for legacy Btrieve v5 database files",
		Long: `btrfind recovers structure from legacy Btrieve v5 database files
when no runtime, index metadata, or schema is available.

It detects fixed record size, classifies file content, discovers field
boundaries by positional statistics, and extracts a closed set of
regex-matched fields (provider codes, addresses, states, ZIP codes,
phone numbers, procedure codes, amounts) into CSV, JSONL, XML, XLSX, or
SQLite.`,
	}
)

// Execute runs the CLI.
func Execute(v string) error {
	version = v

	rootCmd.AddCommand(
		versionCmd(),
		analyzeCmd(),
		exportCmd(),
		scanCmd(),
		compareCmd(),
		repairCmd(),
		statsCmd(),
		searchCmd(),
		reportCmd(),
	)

	return rootCmd.Execute()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("btrfind version %s\n", version)
		},
	}
}
