package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// compareCmd, repairCmd, searchCmd, and reportCmd are registered so the CLI
// surface matches a complete forensic toolkit, but their underlying
// operations (cross-file schema diffing, write-path repair, cross-file
// record search, and formatted reporting) are out of scope: the core in
// btrieve/ is read-only and works file-by-file. Each prints a clear
// not-implemented error rather than silently doing nothing.

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Compare detected schemas across two files (not implemented)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("compare: cross-file schema comparison is not implemented")
		},
	}
}

func repairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repair <file>",
		Short: "Repair a corrupted file in place (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("repair: this tool is read-only and does not modify source files")
		},
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern> <file...>",
		Short: "Search extracted field values across files (not implemented)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("search: cross-file field search is not implemented")
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <file...>",
		Short: "Generate a combined report across multiple files (not implemented)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("report: combined multi-file reporting is not implemented")
		},
	}
}
