package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Inversive-Labs/eloizer/internal/model"
	"github.com/Inversive-Labs/eloizer/internal/report"
)

// row is one renderable line: either a severity header or a finding.
type row struct {
	header   bool
	severity model.Severity
	finding  model.Finding
	index    int // 1-based, spans all groups
}

type browser struct {
	rows    []row
	cursor  int
	details bool
	total   int
}

func newBrowser(s report.Summary, details bool) browser {
	var rows []row
	index := 1
	for _, g := range s.Groups {
		rows = append(rows, row{header: true, severity: g.Severity})
		for _, f := range g.Findings {
			rows = append(rows, row{severity: g.Severity, finding: f, index: index})
			index++
		}
	}
	b := browser{rows: rows, details: details, total: s.Total}
	b.cursor = b.nextFinding(-1)
	return b
}

// nextFinding returns the first finding row after pos, or pos if none.
func (b browser) nextFinding(pos int) int {
	for i := pos + 1; i < len(b.rows); i++ {
		if !b.rows[i].header {
			return i
		}
	}
	return pos
}

func (b browser) prevFinding(pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if !b.rows[i].header {
			return i
		}
	}
	return pos
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return b, tea.Quit
	case "down", "j":
		b.cursor = b.nextFinding(b.cursor)
	case "up", "k":
		b.cursor = b.prevFinding(b.cursor)
	case "v":
		b.details = !b.details
	}
	return b, nil
}

func severityIcon(sev model.Severity) string {
	switch sev {
	case model.SeverityHigh:
		return "🔴"
	case model.SeverityMedium:
		return "🟡"
	case model.SeverityLow:
		return "🟢"
	default:
		return "ℹ️"
	}
}

func (b browser) View() string {
	var out strings.Builder
	fmt.Fprintf(&out, "Findings (%d)  ↑/↓ move · v details · q quit\n\n", b.total)
	for i, r := range b.rows {
		if r.header {
			fmt.Fprintf(&out, "%s %s Severity\n", severityIcon(r.severity), r.severity.Label())
			continue
		}
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		fmt.Fprintf(&out, "%s%d. %s\n", marker, r.index, r.finding.Description)
		fmt.Fprintf(&out, "     📍 %s\n", r.finding.Location)
		if b.details && i == b.cursor {
			if r.finding.CodeSnippet != "" {
				fmt.Fprintf(&out, "     Code: %s\n", strings.ReplaceAll(r.finding.CodeSnippet, "\n", "\n           "))
			}
			if len(r.finding.Recommendations) > 0 {
				fmt.Fprintf(&out, "     💡 %s\n", strings.Join(r.finding.Recommendations, ", "))
			}
		}
	}
	return out.String()
}

// Browse opens the interactive findings view over an aggregated summary.
// A summary with no findings opens nothing.
func Browse(s report.Summary, details bool) error {
	if s.Total == 0 {
		return nil
	}
	p := tea.NewProgram(newBrowser(s, details))
	_, err := p.Run()
	return err
}
