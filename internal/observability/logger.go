package observability

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Verbosity levels passed to logr's V.
const (
	INFO  = 0
	DEBUG = 1
)

const logPrefix = "[troop_optimizer] "

// NewLogger returns a logr.Logger that writes through the standard log package.
// DEBUG messages are emitted only when verbose is set. The stdr verbosity is
// process-wide, so the last call wins.
func NewLogger(w io.Writer, verbose bool) logr.Logger {
	if verbose {
		stdr.SetVerbosity(DEBUG)
	} else {
		stdr.SetVerbosity(INFO)
	}
	return stdr.New(log.New(w, logPrefix, log.LstdFlags))
}
