// Package diag wires up the logrus logger the driver and CLI use for
// diagnostics. Nothing the prover prints to satisfy the transcript
// format (spec §6) goes through this logger — transcripts are written
// directly to the configured output writer so that raising the log level
// never changes a transcript's bytes.
package diag

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger that writes to out at Error level, or at Debug
// level when verbose is set, formatted as plain text (no color, no JSON)
// so it reads cleanly alongside the transcript on a terminal or in a log
// file.
func New(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: !verbose, FullTimestamp: verbose})
	log.SetLevel(logrus.ErrorLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
