package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Inversive-Labs/eloizer/internal/display"
)

// Console renders aggregated findings for the terminal. Rendering never
// mutates the summary, so both views are safe to print repeatedly.
type Console struct {
	Out io.Writer
	D   *display.Context
}

func rule(w io.Writer, d *display.Context) {
	fmt.Fprintln(w, d.Dim(strings.Repeat("═", 70)))
}

// PrintSummary writes the per-severity counts. The counts come from the
// engine's stats, not from re-counting the groups.
func (c *Console) PrintSummary(s Summary) {
	rule(c.Out, c.D)
	fmt.Fprintf(c.Out, "\n%s\n\n", c.D.Heading("📊 ANALYSIS SUMMARY"))

	if s.Total == 0 {
		fmt.Fprintf(c.Out, "  %s No vulnerabilities found!\n\n", c.D.OK("✓"))
		return
	}

	fmt.Fprintf(c.Out, "  Total findings: %d\n\n", s.Total)
	for _, g := range s.Groups {
		st := c.D.SeverityStyle(g.Severity)
		label := g.Severity.Label() + ":"
		fmt.Fprintf(c.Out, "  %s %-15s %s\n", st.Icon, label, st.Sprintf("%d", s.Count(g.Severity)))
	}
	fmt.Fprintln(c.Out)
}

// PrintFindings writes the detailed listing: groups in canonical order, one
// monotonically increasing index across all groups. Verbose adds the code
// snippet and recommendations when present.
func (c *Console) PrintFindings(s Summary, verbose bool) {
	if s.Total == 0 {
		return
	}

	rule(c.Out, c.D)
	fmt.Fprintf(c.Out, "\n%s\n\n", c.D.Heading("🔍 DETAILED FINDINGS"))

	index := 1
	for _, g := range s.Groups {
		st := c.D.SeverityStyle(g.Severity)
		fmt.Fprintf(c.Out, "%s %s\n\n", st.Icon, st.Sprintf("%s Severity", g.Severity.Label()))

		for _, f := range g.Findings {
			fmt.Fprintf(c.Out, "  %d. %s\n", index, st.Sprint(f.Description))
			fmt.Fprintf(c.Out, "     📍 %s\n", st.Sprint(f.Location.String()))
			if verbose {
				if f.CodeSnippet != "" {
					fmt.Fprintf(c.Out, "     %s %s\n", c.D.Dim("Code:"), st.Sprint(f.CodeSnippet))
				}
				if len(f.Recommendations) > 0 {
					fmt.Fprintf(c.Out, "     💡 %s\n", c.D.OK(strings.Join(f.Recommendations, ", ")))
				}
			}
			fmt.Fprintln(c.Out)
			index++
		}
	}
}
