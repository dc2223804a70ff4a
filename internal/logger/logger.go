// Package logger provides internal logging utilities for the btrfind CLI.
package logger

import (
	"os"

	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
)

// Log is the internal logger for btrfind. CLI commands log through it
// directly, and a btrfind.Pipeline built without WithLogger uses it as the
// logger of its RunContext.
var Log core.Logger

func init() {
	level := core.InformationLevel
	if lvl, ok := os.LookupEnv("BTRTOOLS_LOG_LEVEL"); ok {
		if parsed, err := parseLevel(lvl); err == nil {
			level = parsed
		}
	}

	Log = mtlog.New(
		mtlog.WithConsole(),
		mtlog.WithMinimumLevel(level),
	)
}

func parseLevel(s string) (core.LogEventLevel, error) {
	switch s {
	case "verbose", "trace":
		return core.VerboseLevel, nil
	case "debug":
		return core.DebugLevel, nil
	case "info", "information":
		return core.InformationLevel, nil
	case "warn", "warning":
		return core.WarningLevel, nil
	case "error":
		return core.ErrorLevel, nil
	case "fatal":
		return core.FatalLevel, nil
	default:
		return core.InformationLevel, os.ErrInvalid
	}
}
