package display

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner is a cosmetic progress indicator ticking on a fixed timer. It is
// inert in quiet mode or without a terminal, and must be stopped before any
// further output is printed.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner starts a spinner with the given message. Returns an inert
// spinner when quiet or stderr is not a terminal.
func (c *Context) NewSpinner(message string) *Spinner {
	if c.Quiet || !term.IsTerminal(int(os.Stderr.Fd())) {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return &Spinner{s: s}
}

// Stop clears the spinner. Safe to call on an inert spinner and more than once.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
		sp.s = nil
	}
}
