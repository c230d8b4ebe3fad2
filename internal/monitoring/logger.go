// Package monitoring holds the process-wide diagnostic logger used by the
// loader, writer and command loop. User-facing output never goes through it.
package monitoring

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "pointset: ", log.LstdFlags)

// Logf is the package-level diagnostic logger. It defaults to a stderr logger
// but may be replaced by SetLogger. Tests or production code can redirect or
// mute it.
var Logf func(format string, v ...interface{}) = std.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Quiet mutes the logger when quiet is true and restores the stderr logger
// otherwise.
func Quiet(quiet bool) {
	if quiet {
		SetLogger(nil)
		return
	}
	SetLogger(std.Printf)
}
