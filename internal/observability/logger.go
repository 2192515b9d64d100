// Package observability provides logger construction and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger. Verbose mode lowers the level
// to debug and adds caller reporting.
func NewLogger(out io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "bayform",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}
	return logger
}
