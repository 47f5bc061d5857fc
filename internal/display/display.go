package display

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Inversive-Labs/eloizer/internal/model"
)

// Style is the display descriptor for one severity: a marker icon and the
// color applied to text of that severity.
type Style struct {
	Icon  string
	color *color.Color
}

// Sprint colorizes its arguments with the style's color.
func (s Style) Sprint(a ...any) string { return s.color.Sprint(a...) }

// Sprintf colorizes a formatted string with the style's color.
func (s Style) Sprintf(format string, a ...any) string { return s.color.Sprintf(format, a...) }

// Context is the run-scoped display configuration, constructed once at
// startup and threaded into the reporting components.
type Context struct {
	Verbose bool
	Quiet   bool

	colorOn bool
	high    Style
	medium  Style
	low     Style
	info    Style

	ok   *color.Color
	err  *color.Color
	warn *color.Color
	step *color.Color
	dim  *color.Color
	head *color.Color
}

// New builds a display context. Color is disabled by the flag, the NO_COLOR
// environment variable, or a non-terminal stdout.
func New(noColor, verbose, quiet bool) *Context {
	on := !noColor && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))

	c := &Context{
		Verbose: verbose,
		Quiet:   quiet,
		colorOn: on,
		high:    Style{Icon: "🔴", color: color.New(color.FgRed, color.Bold)},
		medium:  Style{Icon: "🟡", color: color.New(color.FgYellow, color.Bold)},
		low:     Style{Icon: "🟢", color: color.New(color.FgBlue, color.Bold)},
		info:    Style{Icon: "ℹ️", color: color.New(color.FgCyan)},
		ok:      color.New(color.FgGreen, color.Bold),
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		step:    color.New(color.FgCyan, color.Bold),
		dim:     color.New(color.Faint),
		head:    color.New(color.FgHiWhite, color.Bold),
	}
	if !on {
		for _, cc := range []*color.Color{
			c.high.color, c.medium.color, c.low.color, c.info.color,
			c.ok, c.err, c.warn, c.step, c.dim, c.head,
		} {
			cc.DisableColor()
		}
	}
	return c
}

// ColorEnabled reports whether styled output is active.
func (c *Context) ColorEnabled() bool { return c.colorOn }

// SeverityStyle is the total mapping from severity to display descriptor.
// Unknown values fall back to the informational style.
func (c *Context) SeverityStyle(sev model.Severity) Style {
	switch sev {
	case model.SeverityHigh:
		return c.high
	case model.SeverityMedium:
		return c.medium
	case model.SeverityLow:
		return c.low
	default:
		return c.info
	}
}

func (c *Context) OK(a ...any) string      { return c.ok.Sprint(a...) }
func (c *Context) Err(a ...any) string     { return c.err.Sprint(a...) }
func (c *Context) Warn(a ...any) string    { return c.warn.Sprint(a...) }
func (c *Context) Step(a ...any) string    { return c.step.Sprint(a...) }
func (c *Context) Dim(a ...any) string     { return c.dim.Sprint(a...) }
func (c *Context) Heading(a ...any) string { return c.head.Sprint(a...) }
