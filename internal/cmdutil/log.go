// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger returns the stderr logger for one run. quiet raises the level to
// error regardless of level. Unknown values fall back to info/text; config
// validation rejects them before we get here.
func NewLogger(dst io.Writer, level, format string, quiet bool) *log.Logger {
	logger := log.New(dst)
	logger.SetPrefix("orfscan")

	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetFormatter(log.TextFormatter)
	}
	return logger
}
