package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Inversive-Labs/eloizer/internal/model"
)

// Generator writes the persisted markdown report for one analysis run.
type Generator struct {
	findings []model.Finding
	project  string
	now      func() time.Time
}

// NewGenerator builds a report generator over the run's findings. The
// project identifier is the analyzed directory's path string.
func NewGenerator(findings []model.Finding, project string) *Generator {
	return &Generator{findings: findings, project: project, now: time.Now}
}

// NormalizeMarkdownPath forces a markdown extension: paths already ending in
// .md or .markdown are left alone, anything else has its extension replaced
// with .md. The returned path may therefore differ from the input.
func NormalizeMarkdownPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".md"
}

// SaveMarkdownReport renders the document and writes it to path. The caller
// is expected to have normalized the path already.
func (g *Generator) SaveMarkdownReport(path string) error {
	if err := os.WriteFile(path, []byte(g.render()), 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func (g *Generator) render() string {
	summary := Aggregate(&model.AnalysisResult{
		Findings: g.findings,
		Stats:    model.Stats{FindingsBySeverity: countBySeverity(g.findings)},
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# Security Analysis Report\n\n")
	fmt.Fprintf(&b, "- **Project:** `%s`\n", g.project)
	fmt.Fprintf(&b, "- **Generated:** %s\n", g.now().Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Total findings:** %d\n\n", summary.Total)

	if summary.Total == 0 {
		b.WriteString("No vulnerabilities found.\n")
		return b.String()
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Severity | Count |\n|---|---|\n")
	for _, grp := range summary.Groups {
		fmt.Fprintf(&b, "| %s | %d |\n", grp.Severity.Label(), len(grp.Findings))
	}
	b.WriteString("\n")

	index := 1
	for _, grp := range summary.Groups {
		fmt.Fprintf(&b, "## %s Severity\n\n", grp.Severity.Label())
		for _, f := range grp.Findings {
			fmt.Fprintf(&b, "### %d. %s\n\n", index, f.Description)
			fmt.Fprintf(&b, "- **Rule:** %s\n", f.RuleID)
			fmt.Fprintf(&b, "- **Location:** `%s`\n\n", f.Location)
			if f.CodeSnippet != "" {
				fmt.Fprintf(&b, "```rust\n%s\n```\n\n", f.CodeSnippet)
			}
			if len(f.Recommendations) > 0 {
				b.WriteString("**Recommendations:**\n\n")
				for _, rec := range f.Recommendations {
					fmt.Fprintf(&b, "- %s\n", rec)
				}
				b.WriteString("\n")
			}
			index++
		}
	}
	return b.String()
}

func countBySeverity(findings []model.Finding) map[model.Severity]int {
	out := map[model.Severity]int{}
	for _, f := range findings {
		out[f.Severity]++
	}
	return out
}
