package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Child loggers copy their level and writer at creation time, so the
// package keeps track of them and applies level/output changes to all.
var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	level              = log.InfoLevel
	children           = map[string]*log.Logger{}
)

// New creates a timestamped logger writing to w and filtering at lvl.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g. "14:32:01.45").
func New(w io.Writer, lvl log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
}

// For returns the logger for a component, e.g. "ui" or "assets".
// Repeated calls with the same name return the same logger.
func For(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := children[component]; ok {
		return l
	}
	l := New(output, level)
	l.SetPrefix(component)
	children[component] = l
	return l
}

// SetVerbose switches every component logger between info and debug level.
func SetVerbose(verbose bool) {
	lvl := log.InfoLevel
	if verbose {
		lvl = log.DebugLevel
	}

	mu.Lock()
	defer mu.Unlock()

	level = lvl
	for _, l := range children {
		l.SetLevel(lvl)
	}
}

// SetOutput redirects every component logger to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	for _, l := range children {
		l.SetOutput(w)
	}
}
