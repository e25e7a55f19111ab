// Package logging holds the game-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// L is the shared logger. It writes to stderr until Init is called.
var L = New(os.Stderr, false)

// New builds a logger in the game's format.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rogueratou",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Init replaces the shared logger.
func Init(w io.Writer, debug bool) {
	L = New(w, debug)
}

// Discard silences the shared logger, used by tests.
func Discard() {
	L = New(io.Discard, false)
}
