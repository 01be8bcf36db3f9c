// Package internal holds process-wide plumbing shared by the binaries.
package internal

import (
	"log"
	"os"
)

// InitLogging routes the standard logger to stdout with timestamps at
// microsecond precision. All diagnostics (fallbacks, dataset audits)
// go through this channel; nothing is surfaced to the end user.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
