// Package logging builds the app's structured logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level.
// Unknown levels fall back to info and are reported as an error.
func New(w io.Writer, level string) (*log.Logger, error) {
	l := log.NewWithOptions(w, log.Options{
		Prefix:          "together",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.InfoLevel,
	})
	if strings.TrimSpace(level) == "" {
		return l, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return l, fmt.Errorf("log level %q: %w", level, err)
	}
	l.SetLevel(lvl)
	return l, nil
}

// Discard is a logger that drops everything.
func Discard() *log.Logger { return log.New(io.Discard) }
